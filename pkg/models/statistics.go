package models

// GenreCount holds one genre's share of the library. Percentage is of
// total books, so percentages only sum to 100 when every book carries
// exactly one genre.
type GenreCount struct {
	Genre      string `json:"genre"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// AuthorCount holds the number of library books by one author
type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

// MonthlyStat holds completion and page totals for one calendar month
type MonthlyStat struct {
	Month string `json:"month"` // YYYY-MM
	Books int    `json:"books"`
	Pages int    `json:"pages"`
}

// FastestBook names the completed book with the fewest days to read
type FastestBook struct {
	Title string `json:"title"`
	Days  int    `json:"days"`
}

// ReadingPace summarizes completion speed over finished books.
// Fields are nil when no book qualifies.
type ReadingPace struct {
	AverageDaysPerBook *float64     `json:"average_days_per_book,omitempty"`
	Fastest            *FastestBook `json:"fastest_book,omitempty"`
}

// LengthBuckets counts books by page count; books without a page
// count fall into no bucket.
type LengthBuckets struct {
	Short  int `json:"short"`  // < 250 pages
	Medium int `json:"medium"` // 250-499 pages
	Long   int `json:"long"`   // >= 500 pages
}

// ReadingStatistics is the full derived reading-behavior profile.
// All fields have defined zero values for empty input.
type ReadingStatistics struct {
	TotalBooks     int `json:"total_books"`
	CompletedBooks int `json:"completed_books"`
	CurrentBooks   int `json:"current_books"`
	PlannedBooks   int `json:"planned_books"`
	CompletionRate int `json:"completion_rate"` // percent, 0 when library empty

	BooksThisYear int `json:"books_this_year"`
	GoalProgress  int `json:"goal_progress"` // percent, clamped to [0,100] for display

	LongestStreak int `json:"longest_streak"`
	CurrentStreak int `json:"current_streak"`

	Genres  []GenreCount     `json:"genres"`
	Authors []AuthorCount    `json:"authors"`
	Series  []SeriesProgress `json:"series"`
	Monthly []MonthlyStat    `json:"monthly"`

	Pace    ReadingPace   `json:"pace"`
	Lengths LengthBuckets `json:"lengths"`
}
