package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.GET("", handler.Browse)
		candidates.GET("/:id", handler.PublicProfile)
	}
}

// Browse godoc
// @Summary      Browse candidates
// @Description  Lists candidate profiles for recruiters, optionally filtered by skills (all must match) and minimum experience years
// @Tags         candidates
// @Produce      json
// @Param        skills          query     string  false  "Comma-separated skill list"
// @Param        min_experience  query     int     false  "Minimum experience in years"
// @Success      200  {object}  response.Response{data=[]domain.CandidateCard}
// @Failure      403  {object}  response.Response
// @Router       /candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) Browse(c *gin.Context) {
	var filter domain.CandidateFilter

	if raw := c.Query("skills"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Skills = append(filter.Skills, s)
			}
		}
	}
	if raw := c.Query("min_experience"); raw != "" {
		years, err := strconv.Atoi(raw)
		if err != nil || years < 0 {
			response.Error(c, http.StatusBadRequest, "Invalid min_experience value", nil)
			return
		}
		filter.MinExperienceYears = years
	}

	cards, err := h.candidateUC.Browse(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates retrieved", cards)
}

// PublicProfile godoc
// @Summary      Get a candidate's public profile
// @Description  Returns the candidate row joined with the account profile
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate user ID"
// @Success      200  {object}  response.Response{data=domain.CandidateCard}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) PublicProfile(c *gin.Context) {
	card, err := h.candidateUC.PublicProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile", card)
}
