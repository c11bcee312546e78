package validation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"scratchcard-backend/internal/features/offer/models"
)

// MaxCatalogSize bounds the number of offers in one catalog.
const MaxCatalogSize = 1000

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateOffer checks a single offer's field constraints.
func ValidateOffer(offer models.Offer) error {
	if math.IsNaN(offer.Probability) || math.IsInf(offer.Probability, 0) {
		return fmt.Errorf("offer %q: probability must be a finite number", offer.ID)
	}
	if err := validate.Struct(offer); err != nil {
		return fmt.Errorf("offer %q: %s", offer.ID, describe(err))
	}
	return nil
}

// ValidateCatalog checks every offer and catalog-wide rules: non-empty, bounded, unique ids.
func ValidateCatalog(offers []models.Offer) error {
	if len(offers) == 0 {
		return fmt.Errorf("catalog must contain at least one offer")
	}
	if len(offers) > MaxCatalogSize {
		return fmt.Errorf("catalog cannot exceed %d offers", MaxCatalogSize)
	}

	seen := make(map[string]struct{}, len(offers))
	for i, offer := range offers {
		offer.ID = strings.TrimSpace(offer.ID)
		if err := ValidateOffer(offer); err != nil {
			return fmt.Errorf("offer #%d: %w", i, err)
		}
		if _, dup := seen[offer.ID]; dup {
			return fmt.Errorf("offer #%d: duplicate id %q", i, offer.ID)
		}
		seen[offer.ID] = struct{}{}
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
