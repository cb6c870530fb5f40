package series

import (
	"sort"
	"strings"

	"github.com/hridaya423/bookify/pkg/models"
)

// maxSuggestions caps the gap-suggestion list.
const maxSuggestions = 5

// companionKeywords excludes tie-in material that matches a series
// name but is not a numbered volume.
var companionKeywords = []string{
	"guide",
	"companion",
	"cookbook",
	"journal",
	"diary",
	"handbook",
	"encyclopedia",
	"coloring",
	"sticker",
	"annotated",
	"boxed set",
	"box set",
	"collection",
	"anthology",
}

// FindMissingSeriesBooks suggests volumes the user does not own yet
// for the series present in ownedBooks. A candidate must match an
// owned series' author exactly (case-insensitive) and carry the
// series name or a known alias in its title; companion material and
// titles already owned (loose two-way substring match) are excluded.
// Survivors dedupe by fuzzy title containment, sort by publish date
// ascending with unknown dates last (alphabetical ties), and cap at
// five. Empty or malformed input yields an empty list, never an error.
func FindMissingSeriesBooks(ownedBooks []models.Book, candidates []models.RawBookRecord) []string {
	type ownedSeries struct {
		name    string
		author  string
		aliases []string
	}

	var owned []ownedSeries
	seenSeries := map[string]bool{}
	var ownedTitles []string
	for _, b := range ownedBooks {
		ownedTitles = append(ownedTitles, normalizeTitle(b.Title))
		if !b.HasSeries() {
			continue
		}
		key := normalizeTitle(b.SeriesName) + "|" + strings.ToLower(b.Author)
		if seenSeries[key] {
			continue
		}
		seenSeries[key] = true
		s := ownedSeries{
			name:    b.SeriesName,
			author:  b.Author,
			aliases: []string{normalizeTitle(b.SeriesName)},
		}
		if known := lookupKnownSeriesByName(b.SeriesName); known != nil {
			s.aliases = append(s.aliases, known.Aliases...)
		}
		owned = append(owned, s)
	}
	if len(owned) == 0 {
		return []string{}
	}

	type suggestion struct {
		title   string
		dateKey string // YYYY[-MM[-DD]], empty sorts last
		norm    string
	}
	var kept []suggestion

	for _, c := range candidates {
		title := strings.TrimSpace(c.Title)
		author := strings.TrimSpace(c.PrimaryAuthor())
		if title == "" || author == "" {
			continue
		}
		norm := normalizeTitle(title)

		matched := false
		for _, s := range owned {
			if !strings.EqualFold(author, s.author) {
				continue
			}
			for _, alias := range s.aliases {
				if alias != "" && strings.Contains(norm, alias) {
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
		if !matched {
			continue
		}

		if isCompanionTitle(norm) {
			continue
		}

		alreadyOwned := false
		for _, ot := range ownedTitles {
			if ot == "" {
				continue
			}
			if strings.Contains(norm, ot) || strings.Contains(ot, norm) {
				alreadyOwned = true
				break
			}
		}
		if alreadyOwned {
			continue
		}

		duplicate := false
		for _, k := range kept {
			if strings.Contains(k.norm, norm) || strings.Contains(norm, k.norm) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		kept = append(kept, suggestion{
			title:   title,
			dateKey: strings.TrimSpace(c.PublishedDate),
			norm:    norm,
		})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		switch {
		case a.dateKey == "" && b.dateKey == "":
			return a.title < b.title
		case a.dateKey == "":
			return false
		case b.dateKey == "":
			return true
		case a.dateKey != b.dateKey:
			return a.dateKey < b.dateKey
		default:
			return a.title < b.title
		}
	})

	if len(kept) > maxSuggestions {
		kept = kept[:maxSuggestions]
	}
	out := make([]string, 0, len(kept))
	for _, k := range kept {
		out = append(out, k.title)
	}
	return out
}

func isCompanionTitle(normalizedTitle string) bool {
	for _, kw := range companionKeywords {
		if strings.Contains(normalizedTitle, kw) {
			return true
		}
	}
	return false
}
