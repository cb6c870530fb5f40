// Package stats derives a reading-behavior profile from a user's
// already-fetched library snapshot. Every function is pure: no I/O,
// no hidden state, and a defined zero value for empty input.
package stats

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/hridaya423/bookify/pkg/models"
	"github.com/hridaya423/bookify/pkg/utils"
)

// DefaultMonthWindow is the trailing month count reported by Compute.
const DefaultMonthWindow = 6

// Compute builds the full ReadingStatistics aggregate from a library
// snapshot. The reference time is passed in so output is reproducible.
func Compute(books []models.Book, entries []models.DailyReadingEntry, settings models.UserSettings, now time.Time) models.ReadingStatistics {
	books = wellFormed(books)

	out := models.ReadingStatistics{}
	out.TotalBooks, out.CompletedBooks, out.CurrentBooks, out.PlannedBooks, out.CompletionRate = ComputeCoreCounts(books)
	out.BooksThisYear, out.GoalProgress = ComputeGoalProgress(books, settings, utils.YearUTC(now))
	out.LongestStreak, out.CurrentStreak = ComputeStreaks(entries, now)
	out.Genres = ComputeGenreDistribution(books)
	out.Authors = ComputeAuthorStats(books)
	out.Series = ComputeSeriesProgress(books)
	out.Monthly = ComputeMonthlyStats(books, entries, DefaultMonthWindow, now)
	out.Pace = ComputeReadingPace(books)
	out.Lengths = BucketByLength(books)
	return out
}

// ComputeCoreCounts tallies shelf sizes and the completion rate.
// The rate is 0 for an empty library, never NaN.
func ComputeCoreCounts(books []models.Book) (total, completed, current, planned, completionRate int) {
	for _, b := range books {
		switch b.Status {
		case models.BookStatusPast:
			completed++
		case models.BookStatusCurrent:
			current++
		case models.BookStatusPlanned:
			planned++
		}
	}
	total = len(books)
	if total > 0 {
		completionRate = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return total, completed, current, planned, completionRate
}

// ComputeGoalProgress counts books completed in the reference UTC
// calendar year and the clamped percentage toward the yearly goal.
// A zero goal reports 0 progress. RawGoalProgress returns the
// unclamped value for pace projections.
func ComputeGoalProgress(books []models.Book, settings models.UserSettings, referenceYear int) (booksThisYear, goalProgress int) {
	booksThisYear = completedInYear(books, referenceYear)
	raw := RawGoalProgress(booksThisYear, settings.ReadingGoal)
	goalProgress = raw
	if goalProgress > 100 {
		goalProgress = 100
	}
	if goalProgress < 0 {
		goalProgress = 0
	}
	return booksThisYear, goalProgress
}

// RawGoalProgress is the unclamped goal percentage, 0 when goal is 0.
func RawGoalProgress(booksThisYear, goal int) int {
	if goal <= 0 {
		return 0
	}
	return int(math.Round(float64(booksThisYear) / float64(goal) * 100))
}

func completedInYear(books []models.Book, year int) int {
	n := 0
	for _, b := range books {
		if b.Status != models.BookStatusPast || b.DateCompleted == nil {
			continue
		}
		if utils.YearUTC(*b.DateCompleted) == year {
			n++
		}
	}
	return n
}

// ComputeGenreDistribution maps each genre to its book count and its
// percentage of total books. A book contributes to every genre it
// carries, so counts can exceed the library size. Sorted descending
// by count; ties keep first-occurrence order.
func ComputeGenreDistribution(books []models.Book) []models.GenreCount {
	counts := map[string]int{}
	var order []string
	for _, b := range books {
		for _, g := range b.Genres {
			g = strings.TrimSpace(g)
			if g == "" {
				continue
			}
			if _, seen := counts[g]; !seen {
				order = append(order, g)
			}
			counts[g]++
		}
	}

	out := make([]models.GenreCount, 0, len(order))
	for _, g := range order {
		pct := 0
		if len(books) > 0 {
			pct = int(math.Round(float64(counts[g]) / float64(len(books)) * 100))
		}
		out = append(out, models.GenreCount{Genre: g, Count: counts[g], Percentage: pct})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// ComputeAuthorStats counts books per author, descending by count
// with first-occurrence tie order.
func ComputeAuthorStats(books []models.Book) []models.AuthorCount {
	counts := map[string]int{}
	var order []string
	for _, b := range books {
		author := strings.TrimSpace(b.Author)
		if author == "" {
			continue
		}
		if _, seen := counts[author]; !seen {
			order = append(order, author)
		}
		counts[author]++
	}

	out := make([]models.AuthorCount, 0, len(order))
	for _, a := range order {
		out = append(out, models.AuthorCount{Author: a, Count: counts[a]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// ComputeSeriesProgress reports owned/completed counts per series for
// books flagged as series members. First-occurrence order.
func ComputeSeriesProgress(books []models.Book) []models.SeriesProgress {
	byName := map[string]*models.SeriesProgress{}
	var order []string
	for _, b := range books {
		if !b.HasSeries() {
			continue
		}
		name := strings.TrimSpace(b.SeriesName)
		sp, ok := byName[name]
		if !ok {
			sp = &models.SeriesProgress{SeriesName: name}
			byName[name] = sp
			order = append(order, name)
		}
		sp.Total++
		if b.Status == models.BookStatusPast {
			sp.Completed++
		}
	}

	out := make([]models.SeriesProgress, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out
}

// ComputeReadingPace averages days-to-read over completed books with
// both timestamps present. Days are rounded up; the fastest book tie
// breaks by input order. Both fields absent when nothing qualifies.
func ComputeReadingPace(books []models.Book) models.ReadingPace {
	var pace models.ReadingPace
	totalDays := 0
	qualifying := 0

	for _, b := range books {
		if b.Status != models.BookStatusPast || b.DateCompleted == nil {
			continue
		}
		days := int(math.Ceil(b.DateCompleted.Sub(b.DateAdded).Hours() / 24))
		if days < 0 {
			continue // malformed row, completed before added
		}
		totalDays += days
		qualifying++
		if pace.Fastest == nil || days < pace.Fastest.Days {
			pace.Fastest = &models.FastestBook{Title: b.Title, Days: days}
		}
	}

	if qualifying > 0 {
		avg := float64(totalDays) / float64(qualifying)
		pace.AverageDaysPerBook = &avg
	}
	return pace
}

// BucketByLength counts books by page count. Books without a page
// count are excluded from every bucket.
func BucketByLength(books []models.Book) models.LengthBuckets {
	var buckets models.LengthBuckets
	for _, b := range books {
		if b.TotalPages == nil {
			continue
		}
		switch pages := *b.TotalPages; {
		case pages < 250:
			buckets.Short++
		case pages < 500:
			buckets.Medium++
		default:
			buckets.Long++
		}
	}
	return buckets
}

// wellFormed drops rows missing required fields rather than letting a
// single bad row abort the whole computation.
func wellFormed(books []models.Book) []models.Book {
	out := books[:0:0]
	for _, b := range books {
		if strings.TrimSpace(b.Title) == "" || strings.TrimSpace(b.Author) == "" {
			continue
		}
		out = append(out, b)
	}
	return out
}
