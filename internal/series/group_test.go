package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hridaya423/bookify/pkg/models"
)

func rec(title, author string) models.RawBookRecord {
	return models.RawBookRecord{Title: title, Authors: []string{author}}
}

func TestGroupDiscardsSingletons(t *testing.T) {
	results := GroupSearchResults([]models.RawBookRecord{
		rec("Mistborn: The Final Empire", "Brandon Sanderson"),
		rec("Elantris: A Novel", "Brandon Sanderson"),
	})

	// Each series has one book, so both groups drop.
	assert.Empty(t, results)
}

func TestGroupOrdersByVolume(t *testing.T) {
	results := GroupSearchResults([]models.RawBookRecord{
		rec("Mistborn: The Hero of Ages", "Brandon Sanderson"),
		rec("Mistborn: The Final Empire", "Brandon Sanderson"),
		rec("Mistborn: The Well of Ascension", "Brandon Sanderson"),
	})

	require.Len(t, results, 1)
	g := results[0]
	assert.Equal(t, "Mistborn", g.SeriesName)
	assert.Equal(t, "Brandon Sanderson", g.Author)
	assert.Equal(t, 3, g.TotalBooks)
	require.Len(t, g.Books, 3)
	assert.Equal(t, "Mistborn: The Final Empire", g.Books[0].Title)
	assert.Equal(t, "Mistborn: The Well of Ascension", g.Books[1].Title)
	assert.Equal(t, "Mistborn: The Hero of Ages", g.Books[2].Title)
}

func TestGroupUnknownOrdersAppendLast(t *testing.T) {
	results := GroupSearchResults([]models.RawBookRecord{
		rec("Wayfarers: Record of a Spaceborn Few", "Becky Chambers"),
		rec("Wayfarers: The Long Way (Book 1)", "Becky Chambers"),
		rec("Wayfarers: A Closed and Common Orbit", "Becky Chambers"),
	})

	require.Len(t, results, 1)
	g := results[0]
	require.Len(t, g.Books, 3)
	assert.Equal(t, "Wayfarers: The Long Way (Book 1)", g.Books[0].Title)
	// Unordered volumes keep discovery order after the numbered ones.
	assert.Equal(t, "Wayfarers: Record of a Spaceborn Few", g.Books[1].Title)
	assert.Equal(t, "Wayfarers: A Closed and Common Orbit", g.Books[2].Title)
	assert.Equal(t, 4.0, g.Books[1].Order)
	assert.Equal(t, 4.0, g.Books[2].Order)
}

func TestGroupDeduplicatesEditions(t *testing.T) {
	results := GroupSearchResults([]models.RawBookRecord{
		rec("Mistborn: The Final Empire", "Brandon Sanderson"),
		rec("Mistborn: The Final Empire!", "Brandon Sanderson"),
		rec("Mistborn: The Well of Ascension", "Brandon Sanderson"),
	})

	require.Len(t, results, 1)
	assert.Len(t, results[0].Books, 2)
}

func TestGroupSeparatesAuthors(t *testing.T) {
	results := GroupSearchResults([]models.RawBookRecord{
		rec("Shadow: First Light", "A. Author"),
		rec("Shadow: Second Dawn", "A. Author"),
		rec("Shadow: First Light", "B. Writer"),
	})

	// Same series name under a different author stays a singleton.
	require.Len(t, results, 1)
	assert.Equal(t, "A. Author", results[0].Author)
}

func TestGroupSkipsMalformedCandidates(t *testing.T) {
	results := GroupSearchResults([]models.RawBookRecord{
		{Title: "Mistborn: The Final Empire"},
		rec("", "Brandon Sanderson"),
		rec("Mistborn: The Well of Ascension", "Brandon Sanderson"),
	})

	assert.Empty(t, results)
}

func TestGroupRelevanceOrdering(t *testing.T) {
	results := GroupSearchResults([]models.RawBookRecord{
		rec("Small: One", "X"),
		rec("Small: Two", "X"),
		rec("Big: One", "Y"),
		rec("Big: Two", "Y"),
		rec("Big: Three", "Y"),
	})

	require.Len(t, results, 2)
	assert.Equal(t, "Big", results[0].SeriesName)
	assert.Equal(t, "Small", results[1].SeriesName)
}

func TestGroupEmptyInput(t *testing.T) {
	assert.Empty(t, GroupSearchResults(nil))
}
