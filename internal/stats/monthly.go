package stats

import (
	"time"

	"github.com/hridaya423/bookify/pkg/models"
	"github.com/hridaya423/bookify/pkg/utils"
)

// ComputeMonthlyStats reports books completed and pages read for the
// trailing monthCount UTC calendar months ending at the current month.
// Months with no activity report zeros rather than being omitted.
// Output is oldest first.
func ComputeMonthlyStats(books []models.Book, entries []models.DailyReadingEntry, monthCount int, now time.Time) []models.MonthlyStat {
	if monthCount <= 0 {
		return []models.MonthlyStat{}
	}

	current := utils.MonthUTC(now)
	index := map[string]int{}
	out := make([]models.MonthlyStat, monthCount)
	for i := 0; i < monthCount; i++ {
		m := current.AddDate(0, i-(monthCount-1), 0)
		key := utils.FormatMonth(m)
		index[key] = i
		out[i] = models.MonthlyStat{Month: key}
	}

	for _, b := range books {
		if b.DateCompleted == nil {
			continue
		}
		if i, ok := index[utils.FormatMonth(*b.DateCompleted)]; ok {
			out[i].Books++
		}
	}

	for _, e := range entries {
		if e.PagesRead <= 0 {
			continue
		}
		if i, ok := index[utils.FormatMonth(e.Date)]; ok {
			out[i].Pages += e.PagesRead
		}
	}

	return out
}
