package models

import offermodels "scratchcard-backend/internal/features/offer/models"

// Stats is the admin overview of the game state.
type Stats struct {
	Offers    []offermodels.OfferStats `json:"offers"`
	PlayCount int64                    `json:"play_count"`
}

// ResetResponse is returned by a successful reset.
type ResetResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"All offers and scratch count have been reset!"`
}

const ResetMessage = "All offers and scratch count have been reset!"
