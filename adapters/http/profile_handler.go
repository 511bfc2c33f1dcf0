package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/profile"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
}

func NewProfileHandler(uc *profileUC.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profileUseCase: uc}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	output, err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Profile)
}
