package models

// Offer is a redeemable promotional item with a usage cap and a selection weight.
type Offer struct {
	ID          string  `json:"id" yaml:"id" validate:"required,max=64"`
	Name        string  `json:"name" yaml:"name" validate:"required,max=200"`
	Image       string  `json:"image" yaml:"image" validate:"max=512"`
	MaxUsage    int64   `json:"max_usage" yaml:"max_usage" validate:"gte=0"`
	UsedCount   int64   `json:"used_count" yaml:"used_count" validate:"gte=0,ltefield=MaxUsage"`
	Probability float64 `json:"probability" yaml:"probability" validate:"gte=0"`
}

// Exhausted reports whether the offer has reached its usage cap.
func (o Offer) Exhausted() bool {
	return o.UsedCount >= o.MaxUsage
}

// Remaining is the number of redemptions left before the cap.
func (o Offer) Remaining() int64 {
	if o.Exhausted() {
		return 0
	}
	return o.MaxUsage - o.UsedCount
}

// CloneOffers returns an independent copy of offers.
func CloneOffers(offers []Offer) []Offer {
	if offers == nil {
		return nil
	}
	out := make([]Offer, len(offers))
	copy(out, offers)
	return out
}

// FreshOffers copies offers with every used_count set to zero.
func FreshOffers(offers []Offer) []Offer {
	out := CloneOffers(offers)
	for i := range out {
		out[i].UsedCount = 0
	}
	return out
}

// Values shown when nothing can be drawn.
const (
	ExhaustedName         = "No Offers Left!"
	ExhaustedImage        = "no_offers_left.png"
	ExhaustedMessage      = "Sorry, all offers have been redeemed."
	ZeroWeightMessage     = "No offers available with valid probabilities."
	DrawOutcomeRedeemed   = "redeemed"
	DrawOutcomeExhausted  = "exhausted"
	DrawOutcomeZeroWeight = "zero_weight"
)

// DrawResult is what a visitor sees after scratching.
type DrawResult struct {
	Name    string `json:"name" example:"1 Ceramic bowl @ 50% OFF"`
	Image   string `json:"image" example:"ceramic_bowls.png"`
	Message string `json:"message,omitempty" example:"Sorry, all offers have been redeemed."`

	// OfferID is internal and never serialized.
	OfferID string `json:"-"`
	Outcome string `json:"-"`
}

// Exhausted reports whether the draw produced the sentinel outcome.
func (r DrawResult) Exhausted() bool {
	return r.Outcome != DrawOutcomeRedeemed
}

// ExhaustedResult builds the sentinel outcome.
func ExhaustedResult(outcome, message string) *DrawResult {
	return &DrawResult{
		Name:    ExhaustedName,
		Image:   ExhaustedImage,
		Message: message,
		Outcome: outcome,
	}
}

// OfferStats is the admin view of one offer.
type OfferStats struct {
	Offer
	Remaining int64 `json:"remaining"`
	Exhausted bool  `json:"exhausted"`
}

// NewOfferStats builds stats for each offer, keeping catalog order.
func NewOfferStats(offers []Offer) []OfferStats {
	out := make([]OfferStats, 0, len(offers))
	for _, o := range offers {
		out = append(out, OfferStats{
			Offer:     o,
			Remaining: o.Remaining(),
			Exhausted: o.Exhausted(),
		})
	}
	return out
}
