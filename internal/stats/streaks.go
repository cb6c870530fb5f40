package stats

import (
	"sort"
	"time"

	"github.com/hridaya423/bookify/pkg/models"
	"github.com/hridaya423/bookify/pkg/utils"
)

// ComputeStreaks walks distinct active reading days (UTC) from most
// recent backward. Days at most one apart extend a streak; a larger
// gap resets it. The current streak is forced to 0 when the most
// recent active day is more than one day before now, so a broken
// streak never shows a stale count.
func ComputeStreaks(entries []models.DailyReadingEntry, now time.Time) (longest, current int) {
	if len(entries) == 0 {
		return 0, 0
	}

	// Multiple books read the same day count as one active day.
	seen := map[time.Time]bool{}
	var days []time.Time
	for _, e := range entries {
		d := utils.DayUTC(e.Date)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	run := 1
	longest = 1
	headRun := 1
	headBroken := false
	for i := 1; i < len(days); i++ {
		gap := utils.DaysBetween(days[i], days[i-1])
		if gap <= 1 {
			run++
		} else {
			run = 1
			headBroken = true
		}
		if run > longest {
			longest = run
		}
		if !headBroken {
			headRun = run
		}
	}

	current = headRun
	if utils.DaysBetween(days[0], utils.DayUTC(now)) > 1 {
		current = 0
	}
	return longest, current
}
