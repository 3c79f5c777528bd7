package v1

import (
	"net/http"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(r *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	company := r.Group("/company")
	{
		company.GET("/me", handler.GetOwn)
	}
}

// GetOwn godoc
// @Summary      Get own company profile
// @Description  Returns the recruiter's company row created by the company flow
// @Tags         company
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Company}
// @Failure      404  {object}  response.Response
// @Router       /company/me [get]
// @Security     BearerAuth
func (h *CompanyHandler) GetOwn(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	company, err := h.companyUC.GetOwn(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile", company)
}
