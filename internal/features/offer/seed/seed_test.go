package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scratchcard-backend/internal/common/validation"
	"scratchcard-backend/internal/features/offer/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	offers := Default().SeedOffers()
	require.Len(t, offers, 9)
	require.NoError(t, validation.ValidateCatalog(offers))
	assert.Equal(t, "offer_1", offers[0].ID)
	assert.Equal(t, 7.5, offers[3].Probability)
}

func TestSeedOffersReturnsFreshCopies(t *testing.T) {
	s := Static{{ID: "a", Name: "A", MaxUsage: 2, UsedCount: 1, Probability: 1}}

	first := s.SeedOffers()
	first[0].Name = "changed"
	second := s.SeedOffers()

	assert.Equal(t, "A", second[0].Name)
	assert.EqualValues(t, 0, second[0].UsedCount)
}

func TestLoadFileJSONList(t *testing.T) {
	path := writeFile(t, "offers.json", `[
		{"id": "a", "name": "A", "image": "a.png", "max_usage": 3, "used_count": 2, "probability": 40},
		{"id": "b", "name": "B", "image": "b.png", "max_usage": 1, "probability": 60}
	]`)

	s, err := LoadFile(path)
	require.NoError(t, err)

	offers := s.SeedOffers()
	require.Len(t, offers, 2)
	assert.Equal(t, models.Offer{ID: "a", Name: "A", Image: "a.png", MaxUsage: 3, Probability: 40}, offers[0])
}

func TestLoadFileJSONObject(t *testing.T) {
	path := writeFile(t, "catalog.json", `{"offers": [{"id": "a", "name": "A", "max_usage": 1, "probability": 1}]}`)

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.SeedOffers(), 1)
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
offers:
  - id: bowl
    name: 1 Ceramic bowl @ 50% OFF
    image: ceramic_bowls.png
    max_usage: 100
    probability: 15
  - id: mat
    name: 1 Kids bath mat @ 50% OFF
    image: bath_mat.png
    max_usage: 50
    probability: 7.5
`)

	s, err := LoadFile(path)
	require.NoError(t, err)

	offers := s.SeedOffers()
	require.Len(t, offers, 2)
	assert.Equal(t, "mat", offers[1].ID)
	assert.EqualValues(t, 50, offers[1].MaxUsage)
	assert.Equal(t, 7.5, offers[1].Probability)
}

func TestLoadFileYAMLList(t *testing.T) {
	path := writeFile(t, "catalog.yml", "- id: a\n  name: A\n  max_usage: 1\n  probability: 1\n")

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.SeedOffers(), 1)
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"neg.json":   `[{"id": "a", "name": "A", "max_usage": 1, "probability": -5}]`,
		"dup.json":   `[{"id": "a", "name": "A", "max_usage": 1}, {"id": "a", "name": "B", "max_usage": 1}]`,
		"empty.json": `[]`,
		"bad.json":   `{"offers": [`,
		"seed.toml":  `offers = []`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, name, content))
			assert.Error(t, err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestNewStaticLeavesInputUntouched(t *testing.T) {
	input := []models.Offer{{ID: "  bowl ", Name: "Bowl", MaxUsage: 5, UsedCount: 2, Probability: 1}}

	s, err := NewStatic(input)
	require.NoError(t, err)

	assert.Equal(t, "  bowl ", input[0].ID)
	assert.EqualValues(t, 2, input[0].UsedCount)
	assert.Equal(t, "bowl", s[0].ID)
	assert.Zero(t, s[0].UsedCount)
}
