package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	certificationUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/certification"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
)

type CertificationHandler struct {
	certificationUseCase *certificationUC.CertificationUseCase
}

func NewCertificationHandler(uc *certificationUC.CertificationUseCase) *CertificationHandler {
	return &CertificationHandler{certificationUseCase: uc}
}

func (h *CertificationHandler) List(c *gin.Context) {
	certs, err := h.certificationUseCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, certs)
}

func (h *CertificationHandler) Create(c *gin.Context) {
	var req CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("name and year are required", err))
		return
	}

	cert, err := h.certificationUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, cert)
}

func (h *CertificationHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("name and year are required", err))
		return
	}

	cert, err := h.certificationUseCase.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (h *CertificationHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.certificationUseCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Certification deleted successfully"})
}
