package series

import "strings"

// knownSeries is a fixed allow-list of well-known series with
// canonical names, title aliases, and per-volume order tables for the
// series whose numbering is common knowledge but absent from titles.
type knownSeries struct {
	Name       string
	Aliases    []string
	TotalBooks int
	// volume title fragment (normalized) -> order
	Volumes map[string]float64
}

var knownSeriesTable = []knownSeries{
	{
		Name:       "Harry Potter",
		Aliases:    []string{"harry potter"},
		TotalBooks: 7,
		Volumes: map[string]float64{
			"philosophers stone":   1,
			"sorcerers stone":      1,
			"chamber of secrets":   2,
			"prisoner of azkaban":  3,
			"goblet of fire":       4,
			"order of the phoenix": 5,
			"half blood prince":    6,
			"deathly hallows":      7,
		},
	},
	{
		Name:       "Mistborn",
		Aliases:    []string{"mistborn"},
		TotalBooks: 3,
		Volumes: map[string]float64{
			"final empire":      1,
			"well of ascension": 2,
			"hero of ages":      3,
		},
	},
	{
		Name:       "The Lord of the Rings",
		Aliases:    []string{"lord of the rings"},
		TotalBooks: 3,
		Volumes: map[string]float64{
			"fellowship of the ring": 1,
			"two towers":             2,
			"return of the king":     3,
		},
	},
	{
		Name:       "The Hunger Games",
		Aliases:    []string{"hunger games"},
		TotalBooks: 3,
		Volumes: map[string]float64{
			"hunger games":  1,
			"catching fire": 2,
			"mockingjay":    3,
		},
	},
	{
		Name:       "A Song of Ice and Fire",
		Aliases:    []string{"song of ice and fire", "game of thrones"},
		TotalBooks: 7,
		Volumes: map[string]float64{
			"game of thrones":    1,
			"clash of kings":     2,
			"storm of swords":    3,
			"feast for crows":    4,
			"dance with dragons": 5,
		},
	},
	{
		Name:       "The Wheel of Time",
		Aliases:    []string{"wheel of time"},
		TotalBooks: 14,
		Volumes: map[string]float64{
			"eye of the world": 1,
			"great hunt":       2,
			"dragon reborn":    3,
		},
	},
	{
		Name:       "Percy Jackson and the Olympians",
		Aliases:    []string{"percy jackson"},
		TotalBooks: 5,
		Volumes: map[string]float64{
			"lightning thief":         1,
			"sea of monsters":         2,
			"titans curse":            3,
			"battle of the labyrinth": 4,
			"last olympian":           5,
		},
	},
	{
		Name:       "The Chronicles of Narnia",
		Aliases:    []string{"narnia"},
		TotalBooks: 7,
		Volumes: map[string]float64{
			"lion the witch and the wardrobe": 1,
			"prince caspian":                  2,
		},
	},
}

// lookupKnownSeries returns the allow-list entry whose alias appears
// in the title, or nil.
func lookupKnownSeries(title string) *knownSeries {
	norm := normalizeTitle(title)
	for i := range knownSeriesTable {
		for _, alias := range knownSeriesTable[i].Aliases {
			if strings.Contains(norm, alias) {
				return &knownSeriesTable[i]
			}
		}
	}
	return nil
}

// lookupKnownSeriesByName matches an owned series name against the
// allow-list for alias-aware gap matching.
func lookupKnownSeriesByName(name string) *knownSeries {
	norm := normalizeTitle(name)
	for i := range knownSeriesTable {
		if normalizeTitle(knownSeriesTable[i].Name) == norm {
			return &knownSeriesTable[i]
		}
		for _, alias := range knownSeriesTable[i].Aliases {
			if alias == norm {
				return &knownSeriesTable[i]
			}
		}
	}
	return nil
}

func (k *knownSeries) orderOf(title string) (float64, bool) {
	norm := normalizeTitle(title)
	for fragment, order := range k.Volumes {
		if strings.Contains(norm, fragment) {
			return order, true
		}
	}
	return 0, false
}
