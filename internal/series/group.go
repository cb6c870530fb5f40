package series

import (
	"sort"
	"strings"

	"github.com/hridaya423/bookify/pkg/models"
)

type group struct {
	name       string
	author     string
	known      *knownSeries
	books      []models.SeriesBook // discovery order
	seenTitles map[string]bool
}

// GroupSearchResults infers series groupings from raw search
// candidates. Candidates are grouped by (series name, primary author),
// deduplicated by normalized title, ordered by parsed volume number
// (unknown orders append after the known ones in discovery order),
// and groups with fewer than two unique books are discarded: one book
// is not a series. Groups rank by 2x book count + total-books
// estimate, ties staying in first-seen order.
func GroupSearchResults(candidates []models.RawBookRecord) []models.SeriesSearchResult {
	byKey := map[string]*group{}
	var order []string

	for _, c := range candidates {
		title := strings.TrimSpace(c.Title)
		author := strings.TrimSpace(c.PrimaryAuthor())
		if title == "" || author == "" {
			continue // required-field absence: skip, never fail
		}

		signal := ExtractSeriesSignal(title)
		if signal.SeriesName == "" {
			continue
		}

		key := normalizeTitle(signal.SeriesName) + "|" + strings.ToLower(author)
		g, ok := byKey[key]
		if !ok {
			g = &group{
				name:       signal.SeriesName,
				author:     author,
				known:      lookupKnownSeries(title),
				seenTitles: map[string]bool{},
			}
			byKey[key] = g
			order = append(order, key)
		}

		norm := normalizeTitle(title)
		if g.seenTitles[norm] {
			continue
		}
		g.seenTitles[norm] = true

		book := models.SeriesBook{Title: title, Author: author, Record: c}
		if signal.Order != nil {
			book.Order = *signal.Order
		}
		g.books = append(g.books, book)
	}

	var results []models.SeriesSearchResult
	for _, key := range order {
		g := byKey[key]
		if len(g.books) < 2 {
			continue
		}
		results = append(results, g.finish())
	}

	sort.SliceStable(results, func(i, j int) bool {
		return relevance(results[i]) > relevance(results[j])
	})
	return results
}

func (g *group) finish() models.SeriesSearchResult {
	size := len(g.books)

	var ordered, unordered []models.SeriesBook
	for _, b := range g.books {
		if b.Order > 0 {
			ordered = append(ordered, b)
		} else {
			unordered = append(unordered, b)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })
	for i := range unordered {
		unordered[i].Order = float64(size + 1)
	}

	return models.SeriesSearchResult{
		SeriesName: g.name,
		Author:     g.author,
		TotalBooks: g.totalEstimate(),
		Books:      append(ordered, unordered...),
	}
}

// totalEstimate prefers the allow-list's known volume count, then the
// highest parsed order, then the group size.
func (g *group) totalEstimate() int {
	if g.known != nil && g.known.TotalBooks > 0 {
		return g.known.TotalBooks
	}
	best := len(g.books)
	for _, b := range g.books {
		if int(b.Order) > best {
			best = int(b.Order)
		}
	}
	return best
}

func relevance(r models.SeriesSearchResult) int {
	return 2*len(r.Books) + r.TotalBooks
}
