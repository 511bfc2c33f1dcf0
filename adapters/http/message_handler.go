package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	messageUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/message"
	"github.com/pushpakoirala/portfolio-api/internal/domain/message"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
)

type MessageHandler struct {
	messageUseCase *messageUC.MessageUseCase
}

func NewMessageHandler(uc *messageUC.MessageUseCase) *MessageHandler {
	return &MessageHandler{messageUseCase: uc}
}

func (h *MessageHandler) List(c *gin.Context) {
	status := message.Status(c.Query("status"))

	messages, err := h.messageUseCase.List(c.Request.Context(), status)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Create is the public contact form endpoint.
func (h *MessageHandler) Create(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("name, email and message are required", err))
		return
	}

	m, err := h.messageUseCase.Create(c.Request.Context(), messageUC.CreateMessageInput{
		Name:     req.Name,
		Email:    req.Email,
		Body:     req.Message,
		ClientIP: c.ClientIP(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully", "id": m.ID.String()})
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.messageUseCase.MarkRead(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

func (h *MessageHandler) MarkUnread(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.messageUseCase.MarkUnread(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked as unread"})
}

func (h *MessageHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.messageUseCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
