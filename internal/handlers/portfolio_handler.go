package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ommivivekanandsai/EduFolio/internal/middleware"
	"github.com/ommivivekanandsai/EduFolio/internal/models"
	"github.com/ommivivekanandsai/EduFolio/internal/services"
	"github.com/ommivivekanandsai/EduFolio/internal/services/dto"
)

type PortfolioHandler struct {
	*BaseHandler
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(base *BaseHandler, portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler:      base,
		portfolioService: portfolioService,
	}
}

func (h *PortfolioHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/portfolio")
	{
		public.GET("/:studentId", h.GetPortfolio)
	}

	// Protected routes: the record key comes from the token, never
	// from the payload
	portfolio := r.Group("/portfolio")
	portfolio.Use(middleware.AuthMiddleware())
	{
		portfolio.PUT("", h.SavePortfolio)
	}

	// Deletion is an administrative operation, not a student one
	admin := r.Group("/admin/portfolio")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleAdmin))
	{
		admin.DELETE("/:studentId", h.DeletePortfolio)
	}
}

func (h *PortfolioHandler) SavePortfolio(c *gin.Context) {
	studentID, ok := h.GetAndAuthorizeStudentID(c)
	if !ok {
		return
	}

	var req dto.SavePortfolioRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.portfolioService.SavePortfolio(c.Request.Context(), h.GetDB(c), studentID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	studentID := c.Param("studentId")

	response, err := h.portfolioService.GetPortfolio(c.Request.Context(), h.GetDB(c), studentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PortfolioHandler) DeletePortfolio(c *gin.Context) {
	studentID := c.Param("studentId")

	if err := h.portfolioService.DeletePortfolio(c.Request.Context(), h.GetDB(c), studentID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio deleted"})
}
