package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hridaya423/bookify/pkg/models"
	"github.com/hridaya423/bookify/pkg/utils"
)

func entriesOn(days ...string) []models.DailyReadingEntry {
	out := make([]models.DailyReadingEntry, 0, len(days))
	for _, d := range days {
		parsed, err := utils.ParseDay(d)
		if err != nil {
			panic(err)
		}
		out = append(out, models.DailyReadingEntry{UserID: "u", BookID: "b", Date: parsed, PagesRead: 10})
	}
	return out
}

func TestStreaksEmpty(t *testing.T) {
	longest, current := ComputeStreaks(nil, day(2024, 1, 10))
	assert.Equal(t, 0, longest)
	assert.Equal(t, 0, current)
}

func TestStreaksConsecutiveWithGap(t *testing.T) {
	entries := entriesOn("2024-01-10", "2024-01-09", "2024-01-08", "2024-01-01")

	longest, current := ComputeStreaks(entries, day(2024, 1, 10))
	assert.Equal(t, 3, longest)
	assert.Equal(t, 3, current)

	// still current when the last active day was yesterday
	longest, current = ComputeStreaks(entries, day(2024, 1, 11))
	assert.Equal(t, 3, longest)
	assert.Equal(t, 3, current)

	// broken streak shows 0, not the stale value
	longest, current = ComputeStreaks(entries, day(2024, 1, 14))
	assert.Equal(t, 3, longest)
	assert.Equal(t, 0, current)
}

func TestStreaksDeduplicatesDays(t *testing.T) {
	// two books on the same day count as a single active day
	entries := append(entriesOn("2024-01-10", "2024-01-09"),
		models.DailyReadingEntry{UserID: "u", BookID: "other", Date: day(2024, 1, 10), PagesRead: 5})

	longest, current := ComputeStreaks(entries, day(2024, 1, 10))
	assert.Equal(t, 2, longest)
	assert.Equal(t, 2, current)
}

func TestStreaksLongestNotCurrent(t *testing.T) {
	entries := entriesOn("2024-01-10", "2024-01-05", "2024-01-04", "2024-01-03", "2024-01-02")

	longest, current := ComputeStreaks(entries, day(2024, 1, 10))
	assert.Equal(t, 4, longest)
	assert.Equal(t, 1, current)
}

func TestStreaksUnsortedInput(t *testing.T) {
	entries := entriesOn("2024-01-08", "2024-01-10", "2024-01-09")

	longest, current := ComputeStreaks(entries, day(2024, 1, 10))
	assert.Equal(t, 3, longest)
	assert.Equal(t, 3, current)
}
