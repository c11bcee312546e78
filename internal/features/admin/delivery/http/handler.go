package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scratchcard-backend/internal/common/middleware"
	"scratchcard-backend/internal/features/admin/models"
	"scratchcard-backend/internal/features/admin/service"
)

type AdminHandler struct {
	service service.AdminService
	auth    gin.HandlerFunc
}

// NewAdminHandler guards every admin route with auth.
func NewAdminHandler(service service.AdminService, auth gin.HandlerFunc) *AdminHandler {
	return &AdminHandler{
		service: service,
		auth:    auth,
	}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(h.auth)
	{
		admin.POST("/reset", h.Reset)
		admin.GET("/reset", h.Reset)
		admin.GET("/offers", h.GetStats)
	}
}

// RegisterLegacyRoutes mounts the unversioned path used by older pages.
func (h *AdminHandler) RegisterLegacyRoutes(router gin.IRoutes) {
	router.GET("/reset_offers", h.auth, h.Reset)
}

// @Summary Reset game state
// @Description Restores the seed catalog with zero usage and sets the play count to 0.
// @Tags admin
// @Produce json
// @Security AdminToken
// @Security TelegramInitData
// @Success 200 {object} models.ResetResponse "Reset done"
// @Failure 401 {object} middleware.ErrorResponse "Missing or invalid credentials"
// @Failure 403 {object} middleware.ErrorResponse "Not an admin"
// @Failure 500 {object} middleware.ErrorResponse "State store failure"
// @Router /admin/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.service.ResetAll(c.Request.Context()); err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ResetResponse{Success: true, Message: models.ResetMessage})
}

// @Summary Catalog statistics
// @Description Lists every offer with its usage and remaining capacity, plus the play count.
// @Tags admin
// @Produce json
// @Security AdminToken
// @Security TelegramInitData
// @Success 200 {object} models.Stats "Current state"
// @Failure 401 {object} middleware.ErrorResponse "Missing or invalid credentials"
// @Failure 403 {object} middleware.ErrorResponse "Not an admin"
// @Failure 500 {object} middleware.ErrorResponse "State store failure"
// @Router /admin/offers [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
