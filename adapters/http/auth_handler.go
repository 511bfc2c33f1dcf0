package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/auth"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
)

type AuthHandler struct {
	loginUseCase          *authUC.LoginUseCase
	changePasswordUseCase *authUC.ChangePasswordUseCase
	changeUsernameUseCase *authUC.ChangeUsernameUseCase
	changeEmailUseCase    *authUC.ChangeEmailUseCase
}

func NewAuthHandler(
	loginUC *authUC.LoginUseCase,
	changePasswordUC *authUC.ChangePasswordUseCase,
	changeUsernameUC *authUC.ChangeUsernameUseCase,
	changeEmailUC *authUC.ChangeEmailUseCase,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:          loginUC,
		changePasswordUseCase: changePasswordUC,
		changeUsernameUseCase: changeUsernameUC,
		changeEmailUseCase:    changeEmailUC,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("username and password are required", err))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": output.Token,
		"user":  ToAdminDTO(output.Admin),
	})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	username, ok := GetAdminUsername(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("admin username not found in context"))
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("current and new password are required", err))
		return
	}

	err := h.changePasswordUseCase.Execute(c.Request.Context(), authUC.ChangePasswordInput{
		Username:        username,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

func (h *AuthHandler) ChangeUsername(c *gin.Context) {
	username, ok := GetAdminUsername(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("admin username not found in context"))
		return
	}

	var req ChangeUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("new username and current password are required", err))
		return
	}

	output, err := h.changeUsernameUseCase.Execute(c.Request.Context(), authUC.ChangeUsernameInput{
		Username:        username,
		NewUsername:     req.NewUsername,
		CurrentPassword: req.CurrentPassword,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": output.Token,
		"user":  ToAdminDTO(output.Admin),
	})
}

func (h *AuthHandler) ChangeEmail(c *gin.Context) {
	username, ok := GetAdminUsername(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("admin username not found in context"))
		return
	}

	var req ChangeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("a valid email is required", err))
		return
	}

	err := h.changeEmailUseCase.Execute(c.Request.Context(), authUC.ChangeEmailInput{
		Username: username,
		Email:    req.Email,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email updated successfully"})
}

// Logout only acknowledges, token invalidation is the client deleting its
// stored copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
