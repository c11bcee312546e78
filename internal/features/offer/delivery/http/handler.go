package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scratchcard-backend/internal/common/middleware"
	"scratchcard-backend/internal/features/offer/service"
)

type OfferHandler struct {
	service service.CatalogService
}

func NewOfferHandler(service service.CatalogService) *OfferHandler {
	return &OfferHandler{
		service: service,
	}
}

func (h *OfferHandler) RegisterRoutes(router *gin.RouterGroup) {
	offers := router.Group("/offers")
	{
		offers.GET("/draw", h.DrawOffer)
	}
}

// RegisterLegacyRoutes mounts the unversioned path used by older pages.
func (h *OfferHandler) RegisterLegacyRoutes(router gin.IRoutes) {
	router.GET("/get_offer", h.DrawOffer)
}

// @Summary Draw an offer
// @Description Picks one available offer by weight and redeems it. When nothing can be drawn the "No Offers Left!" card is returned with a message.
// @Tags offers
// @Produce json
// @Success 200 {object} models.DrawResult "Drawn offer or exhausted card"
// @Failure 500 {object} middleware.ErrorResponse "State store failure"
// @Router /offers/draw [get]
func (h *OfferHandler) DrawOffer(c *gin.Context) {
	result, err := h.service.Draw(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
