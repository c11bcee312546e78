package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scratchcard-backend/internal/common/middleware"
	"scratchcard-backend/internal/features/playcounter/models"
	"scratchcard-backend/internal/features/playcounter/service"
)

type PlayCounterHandler struct {
	service service.PlayCounterService
}

func NewPlayCounterHandler(service service.PlayCounterService) *PlayCounterHandler {
	return &PlayCounterHandler{
		service: service,
	}
}

func (h *PlayCounterHandler) RegisterRoutes(router *gin.RouterGroup) {
	plays := router.Group("/plays")
	{
		plays.POST("", h.Increment)
		plays.GET("", h.GetCount)
	}
}

// RegisterLegacyRoutes mounts the unversioned path used by older pages.
func (h *PlayCounterHandler) RegisterLegacyRoutes(router gin.IRoutes) {
	router.POST("/increment_scratch", h.Increment)
}

// @Summary Count a play
// @Description Adds one to the global scratch counter and returns the new total.
// @Tags plays
// @Produce json
// @Success 200 {object} models.IncrementResponse "New count"
// @Failure 500 {object} middleware.ErrorResponse "State store failure"
// @Router /plays [post]
func (h *PlayCounterHandler) Increment(c *gin.Context) {
	count, err := h.service.Increment(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.IncrementResponse{Success: true, NewCount: count})
}

// @Summary Get play count
// @Description Returns the global scratch counter.
// @Tags plays
// @Produce json
// @Success 200 {object} models.CountResponse "Current count"
// @Failure 500 {object} middleware.ErrorResponse "State store failure"
// @Router /plays [get]
func (h *PlayCounterHandler) GetCount(c *gin.Context) {
	count, err := h.service.Current(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CountResponse{Count: count})
}
