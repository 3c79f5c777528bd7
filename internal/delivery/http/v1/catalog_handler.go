package v1

import (
	"net/http"

	"go-jobmatch-backend/internal/catalog"
	"go-jobmatch-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{}

// NewCatalogHandler registers the public catalog endpoint; the client renders
// every picker from these fixed lists.
func NewCatalogHandler(r *gin.RouterGroup) {
	handler := &CatalogHandler{}
	r.GET("/catalogs", handler.List)
}

// List godoc
// @Summary      Get the field catalogs
// @Description  Returns every fixed option list used by the flows: interests, availability grid, transport, hobbies, quick facts, prompts, skills, industries, company sizes
// @Tags         catalogs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /catalogs [get]
func (h *CatalogHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, "Catalogs", gin.H{
		"work_interests":    catalog.WorkInterests,
		"days_of_week":      catalog.DaysOfWeek,
		"time_slots":        catalog.TimeSlots,
		"transport_modes":   catalog.TransportModes,
		"hobbies":           catalog.Hobbies,
		"quick_facts":       catalog.QuickFacts,
		"prompt_categories": catalog.PromptCategories,
		"soft_skills":       catalog.SoftSkills,
		"technical_skills":  catalog.TechnicalSkills,
		"industries":        catalog.Industries,
		"company_sizes":     catalog.CompanySizes,
		"caps": gin.H{
			"photos":       catalog.MaxPhotos,
			"interests":    catalog.MaxInterests,
			"hobbies":      catalog.MaxHobbies,
			"quick_facts":  catalog.MaxQuickFacts,
			"prompt_slots": catalog.PromptSlots,
		},
	})
}
