// Package seed supplies the catalog used on first start and on reset.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"scratchcard-backend/internal/common/validation"
	"scratchcard-backend/internal/features/offer/models"
)

// Provider returns the seed catalog. Every call returns a fresh copy with
// used_count zeroed.
type Provider interface {
	SeedOffers() []models.Offer
}

// Static is a fixed seed catalog.
type Static []models.Offer

func (s Static) SeedOffers() []models.Offer {
	return models.FreshOffers(s)
}

// NewStatic validates offers and wraps them as a Provider.
func NewStatic(offers []models.Offer) (Static, error) {
	fresh := models.FreshOffers(offers)
	for i := range fresh {
		fresh[i].ID = strings.TrimSpace(fresh[i].ID)
	}
	if err := validation.ValidateCatalog(fresh); err != nil {
		return nil, fmt.Errorf("invalid seed catalog: %w", err)
	}
	return Static(fresh), nil
}

type fileCatalog struct {
	Offers []models.Offer `json:"offers" yaml:"offers"`
}

// LoadFile reads a seed catalog from a .json, .yaml or .yml file. The file
// holds either a bare list of offers or an object with an "offers" list.
func LoadFile(path string) (Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var offers []models.Offer
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		offers, err = decodeYAML(data)
	case ".json", "":
		offers, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("unsupported seed file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return NewStatic(offers)
}

func decodeJSON(data []byte) ([]models.Offer, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var offers []models.Offer
		err := json.Unmarshal(data, &offers)
		return offers, err
	}
	var fc fileCatalog
	err := json.Unmarshal(data, &fc)
	return fc.Offers, err
}

func decodeYAML(data []byte) ([]models.Offer, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		var offers []models.Offer
		err := node.Content[0].Decode(&offers)
		return offers, err
	}
	var fc fileCatalog
	err := node.Decode(&fc)
	return fc.Offers, err
}

// Default is the built-in promotional catalog.
func Default() Static {
	const unlimited = 10000000
	return Static{
		{ID: "offer_1", Name: "1 Ceramic bowl @ 50% OFF", Image: "ceramic_bowls.png", MaxUsage: unlimited, Probability: 15},
		{ID: "offer_2", Name: "1 Kids bath mat @ 50% OFF", Image: "bath_mat.png", MaxUsage: unlimited, Probability: 10},
		{ID: "offer_3", Name: "1 Wax perfume @ 50% OFF", Image: "wax_perfume.png", MaxUsage: unlimited, Probability: 10},
		{ID: "offer_4", Name: "3 greeting cards @ 50% OFF", Image: "greeting_cards.png", MaxUsage: unlimited, Probability: 7.5},
		{ID: "offer_5", Name: "2 Face sheet masks @ 50% OFF", Image: "FSM.png", MaxUsage: unlimited, Probability: 7.5},
		{ID: "offer_6", Name: "1 Crochet sunflower @ 50% OFF", Image: "crochet.png", MaxUsage: unlimited, Probability: 10},
		{ID: "offer_7", Name: "1 Notebook cartoon @ 50% OFF", Image: "notebook_cartoon.png", MaxUsage: unlimited, Probability: 10},
		{ID: "offer_8", Name: "1 Sip smart tumbler @ 50% OFF", Image: "sip_smart_tumbler.png", MaxUsage: unlimited, Probability: 10},
		{ID: "offer_9", Name: "1 Goodgudi copper bottle @ 50% OFF", Image: "copper_bottle.png", MaxUsage: unlimited, Probability: 10},
	}
}
