// Package series infers series membership from free-text book titles,
// groups search candidates into coherent series entries, and finds
// gaps in a user's owned series. Pure computation: callers fetch the
// candidate records, we never touch the network.
package series

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hridaya423/bookify/pkg/models"
)

// Heuristic fallback confidences. The AI-assisted detector scores its
// own results; these apply when that path is unavailable or fails.
const (
	confidenceWithOrder    = 0.5
	confidenceWithoutOrder = 0.3
)

var (
	andTheRe = regexp.MustCompile(`(?i)^(.+?)\s+and\s+the\s+.+$`)

	// Order markers checked in priority order; first match wins.
	// Orders may be fractional (novellas like 1.5).
	orderMarkers = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bbook\s+(\d+(?:\.\d+)?)\b`),
		regexp.MustCompile(`#(\d+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)\(\s*book\s+(\d+(?:\.\d+)?)\s*\)`),
		regexp.MustCompile(`(?i)\bvolume\s+(\d+(?:\.\d+)?)\b`),
		regexp.MustCompile(`(?i)\bpart\s+(\d+(?:\.\d+)?)\b`),
	}
)

// ExtractSeriesSignal applies ordered title-pattern heuristics:
//  1. "<X> and the <rest>" names the series X
//  2. "<X>: <rest>" names the series X
//  3. explicit order markers (book N, #N, volume N, part N)
//  4. known-series lookup, both for naming when 1-2 found nothing and
//     for inferring the order of a recognized volume
func ExtractSeriesSignal(title string) models.SeriesSignal {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.SeriesSignal{Confidence: confidenceWithoutOrder}
	}

	var name string
	if m := andTheRe.FindStringSubmatch(title); m != nil {
		name = strings.TrimSpace(m[1])
	} else if idx := strings.Index(title, ":"); idx > 0 {
		name = strings.TrimSpace(title[:idx])
	}

	var order *float64
	for _, re := range orderMarkers {
		if m := re.FindStringSubmatch(title); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				order = &v
			}
			break
		}
	}

	if known := lookupKnownSeries(title); known != nil {
		if name == "" {
			name = known.Name
		}
		if order == nil {
			if v, ok := known.orderOf(title); ok {
				order = &v
			}
		}
	}

	signal := models.SeriesSignal{SeriesName: name, Order: order}
	if order != nil {
		signal.Confidence = confidenceWithOrder
	} else {
		signal.Confidence = confidenceWithoutOrder
	}
	return signal
}

// normalizeTitle lowercases and strips punctuation so editions like
// "Dune (Deluxe Edition)" and "Dune: Deluxe Edition" compare equal.
func normalizeTitle(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
