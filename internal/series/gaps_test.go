package series

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hridaya423/bookify/pkg/models"
)

func seriesBook(title, author, seriesName string) models.Book {
	return models.Book{
		Title:          title,
		Author:         author,
		IsPartOfSeries: true,
		SeriesName:     seriesName,
	}
}

func candidate(title, author, published string) models.RawBookRecord {
	return models.RawBookRecord{
		Title:         title,
		Authors:       []string{author},
		PublishedDate: published,
	}
}

func TestMissingBooksExcludesOwnedEditions(t *testing.T) {
	// Substring containment either way counts as already owned, so a
	// reissue of an owned title never gets suggested.
	owned := []models.Book{seriesBook("Dune", "Frank Herbert", "Dune")}
	candidates := []models.RawBookRecord{
		candidate("Dune (Deluxe Edition)", "Frank Herbert", "2019"),
	}

	assert.Empty(t, FindMissingSeriesBooks(owned, candidates))
}

func TestMissingBooksSuggestsUnownedVolumes(t *testing.T) {
	owned := []models.Book{
		seriesBook("Mistborn: The Final Empire", "Brandon Sanderson", "Mistborn"),
	}
	candidates := []models.RawBookRecord{
		candidate("Mistborn: The Final Empire", "Brandon Sanderson", "2006"),
		candidate("Mistborn: The Well of Ascension", "Brandon Sanderson", "2007"),
		candidate("Mistborn: The Hero of Ages", "Brandon Sanderson", "2008"),
	}

	missing := FindMissingSeriesBooks(owned, candidates)

	assert.Equal(t, []string{
		"Mistborn: The Well of Ascension",
		"Mistborn: The Hero of Ages",
	}, missing)
}

func TestMissingBooksAuthorMustMatch(t *testing.T) {
	owned := []models.Book{
		seriesBook("Mistborn: The Final Empire", "Brandon Sanderson", "Mistborn"),
	}
	candidates := []models.RawBookRecord{
		candidate("Mistborn: The Well of Ascension", "Someone Else", "2007"),
	}

	assert.Empty(t, FindMissingSeriesBooks(owned, candidates))
}

func TestMissingBooksExcludesCompanionMaterial(t *testing.T) {
	owned := []models.Book{
		seriesBook("Mistborn: The Final Empire", "Brandon Sanderson", "Mistborn"),
	}
	candidates := []models.RawBookRecord{
		candidate("The Mistborn Companion Guide", "Brandon Sanderson", "2015"),
		candidate("Mistborn Coloring Book", "Brandon Sanderson", "2021"),
		candidate("Mistborn Boxed Set", "Brandon Sanderson", "2014"),
		candidate("Mistborn: The Hero of Ages", "Brandon Sanderson", "2008"),
	}

	missing := FindMissingSeriesBooks(owned, candidates)

	assert.Equal(t, []string{"Mistborn: The Hero of Ages"}, missing)
}

func TestMissingBooksSortAndCap(t *testing.T) {
	owned := []models.Book{seriesBook("Redwall Book 1", "Brian Jacques", "Redwall")}
	candidates := []models.RawBookRecord{
		candidate("Redwall Winter", "Brian Jacques", "1990"),
		candidate("Redwall Undated", "Brian Jacques", ""),
		candidate("Redwall Spring", "Brian Jacques", "1987"),
		candidate("Redwall Summer", "Brian Jacques", "1988"),
		candidate("Redwall Autumn", "Brian Jacques", "1989"),
		candidate("Redwall Midnight", "Brian Jacques", "1989"),
		candidate("Redwall Dawn", "Brian Jacques", "1992"),
	}

	missing := FindMissingSeriesBooks(owned, candidates)

	// Date ascending, alphabetical on ties, unknown dates last,
	// capped at five.
	assert.Equal(t, []string{
		"Redwall Spring",
		"Redwall Summer",
		"Redwall Autumn",
		"Redwall Midnight",
		"Redwall Winter",
	}, missing)
}

func TestMissingBooksKnownAliasMatching(t *testing.T) {
	owned := []models.Book{
		seriesBook("A Game of Thrones", "George R. R. Martin", "A Song of Ice and Fire"),
	}
	candidates := []models.RawBookRecord{
		// Title carries the alias, not the canonical series name.
		candidate("A Clash of Kings (Game of Thrones)", "George R. R. Martin", "1998"),
		candidate("Unrelated Fantasy", "George R. R. Martin", "2000"),
	}

	missing := FindMissingSeriesBooks(owned, candidates)

	assert.Equal(t, []string{"A Clash of Kings (Game of Thrones)"}, missing)
}

func TestMissingBooksFuzzyDedup(t *testing.T) {
	owned := []models.Book{
		seriesBook("Mistborn: The Final Empire", "Brandon Sanderson", "Mistborn"),
	}
	candidates := []models.RawBookRecord{
		candidate("Mistborn: Shadows of Self", "Brandon Sanderson", "2015"),
		candidate("Mistborn: Shadows of Self (Anniversary Edition)", "Brandon Sanderson", "2019"),
	}

	missing := FindMissingSeriesBooks(owned, candidates)

	assert.Equal(t, []string{"Mistborn: Shadows of Self"}, missing)
}

func TestMissingBooksEmptyInput(t *testing.T) {
	assert.Empty(t, FindMissingSeriesBooks(nil, nil))
	assert.Empty(t, FindMissingSeriesBooks(
		[]models.Book{{Title: "Standalone", Author: "X"}},
		[]models.RawBookRecord{candidate("Standalone II", "X", "2020")},
	))
}
