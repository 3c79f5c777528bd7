package v1

import (
	"net/http"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := r.Group("/profile")
	{
		profile.GET("/me", handler.GetMe)
		profile.PATCH("/me", handler.UpdateMe)
	}
}

// GetMe godoc
// @Summary      Get own account profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      401  {object}  response.Response
// @Router       /profile/me [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetOwn(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateMe godoc
// @Summary      Update own account profile
// @Description  Partially updates name, location, bio or avatar; omitted fields are left unchanged
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ProfileUpdate  true  "Fields to update"
// @Success      200      {object}  response.Response{data=domain.Profile}
// @Failure      400      {object}  response.Response
// @Router       /profile/me [patch]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var upd domain.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	profile, err := h.profileUC.UpdateOwn(c.Request.Context(), userID, &upd)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}
