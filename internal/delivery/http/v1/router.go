package v1

import (
	"net/http"

	"go-jobmatch-backend/config"
	"go-jobmatch-backend/internal/delivery/http/middleware"
	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	FlowUC       domain.FlowUsecase
	CompletionUC domain.CompletionUsecase
	ProfileUC    domain.ProfileUsecase
	CandidateUC  domain.CandidateUsecase
	CompanyUC    domain.CompanyUsecase
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.GlobalRateLimitMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes
	NewCatalogHandler(v1)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.AuthUC))
	{
		NewFlowHandler(protected, deps.FlowUC)
		NewDashboardHandler(protected, deps.CompletionUC)
		NewProfileHandler(protected, deps.ProfileUC)
		NewCandidateHandler(protected, deps.CandidateUC)
		NewCompanyHandler(protected, deps.CompanyUC)
	}

	return r
}
