package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAndThePattern(t *testing.T) {
	sig := ExtractSeriesSignal("Harry Potter and the Chamber of Secrets")

	assert.Equal(t, "Harry Potter", sig.SeriesName)
	require.NotNil(t, sig.Order)
	assert.Equal(t, 2.0, *sig.Order)
	assert.Equal(t, confidenceWithOrder, sig.Confidence)
}

func TestExtractColonPattern(t *testing.T) {
	sig := ExtractSeriesSignal("Mistborn: The Final Empire")

	assert.Equal(t, "Mistborn", sig.SeriesName)
	require.NotNil(t, sig.Order)
	assert.Equal(t, 1.0, *sig.Order)
}

func TestExtractNoSignal(t *testing.T) {
	sig := ExtractSeriesSignal("The Hobbit")

	assert.Empty(t, sig.SeriesName)
	assert.Nil(t, sig.Order)
	assert.Equal(t, confidenceWithoutOrder, sig.Confidence)
}

func TestExtractOrderMarkers(t *testing.T) {
	tests := []struct {
		title string
		name  string
		order float64
	}{
		{"The Expanse Book 3", "", 3},
		{"Dungeon Crawler Carl #4", "", 4},
		{"The Stormlight Archive: Words of Radiance (Book 2)", "The Stormlight Archive", 2},
		{"In Search of Lost Time, Volume 5", "", 5},
		{"The Kingkiller Chronicle Part 2", "", 2},
		{"Wayward Children #1.5", "", 1.5},
	}
	for _, tt := range tests {
		sig := ExtractSeriesSignal(tt.title)
		assert.Equal(t, tt.name, sig.SeriesName, tt.title)
		require.NotNil(t, sig.Order, tt.title)
		assert.Equal(t, tt.order, *sig.Order, tt.title)
		assert.Equal(t, confidenceWithOrder, sig.Confidence, tt.title)
	}
}

func TestExtractKnownSeriesFallback(t *testing.T) {
	// No colon and no "and the", the allow-list still recognizes it.
	sig := ExtractSeriesSignal("Mistborn The Well of Ascension")

	assert.Equal(t, "Mistborn", sig.SeriesName)
	require.NotNil(t, sig.Order)
	assert.Equal(t, 2.0, *sig.Order)
}

func TestExtractEmptyTitle(t *testing.T) {
	sig := ExtractSeriesSignal("   ")

	assert.Empty(t, sig.SeriesName)
	assert.Nil(t, sig.Order)
	assert.Equal(t, confidenceWithoutOrder, sig.Confidence)
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "dune deluxe edition", normalizeTitle("Dune (Deluxe Edition)"))
	assert.Equal(t, "dune deluxe edition", normalizeTitle("Dune: Deluxe   Edition!"))
	assert.Equal(t, "", normalizeTitle("---"))
}
