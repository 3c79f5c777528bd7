package v1

import (
	"net/http"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	completionUC domain.CompletionUsecase
}

func NewDashboardHandler(r *gin.RouterGroup, completionUC domain.CompletionUsecase) {
	handler := &DashboardHandler{completionUC: completionUC}

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/completion", handler.Completion)
	}
}

// Completion godoc
// @Summary      Get profile completion percentages
// @Description  Returns the weighted completion score per flow for the current user's role; informational only
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CompletionSummary}
// @Failure      401  {object}  response.Response
// @Router       /dashboard/completion [get]
// @Security     BearerAuth
func (h *DashboardHandler) Completion(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	summary, err := h.completionUC.Summary(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Completion summary", summary)
}
