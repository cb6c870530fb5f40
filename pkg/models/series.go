package models

// RawBookRecord is an unstructured candidate from the external book
// search collaborator. Missing fields are absent, never errors.
type RawBookRecord struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
	PageCount     *int     `json:"page_count,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Description   string   `json:"description,omitempty"`
	ThumbnailURL  string   `json:"thumbnail_url,omitempty"`
}

// PrimaryAuthor returns the first listed author, or empty string
func (r *RawBookRecord) PrimaryAuthor() string {
	if len(r.Authors) == 0 {
		return ""
	}
	return r.Authors[0]
}

// SeriesBook is one volume inside a resolved series grouping
type SeriesBook struct {
	Title  string        `json:"title"`
	Author string        `json:"author"`
	Order  float64       `json:"order"`
	Record RawBookRecord `json:"record"`
}

// SeriesSearchResult is an ephemeral series grouping computed from
// search candidates; never persisted.
type SeriesSearchResult struct {
	SeriesName string       `json:"series_name"`
	Author     string       `json:"author"`
	TotalBooks int          `json:"total_books_estimate"`
	Books      []SeriesBook `json:"books"`
}

// SeriesSignal is the result of title-pattern series detection.
// Confidence is 0.5 when an order was parsed, 0.3 otherwise; the
// AI-assisted path supplies its own score.
type SeriesSignal struct {
	SeriesName string   `json:"series_name,omitempty"`
	Order      *float64 `json:"order,omitempty"`
	Confidence float64  `json:"confidence"`
}

// SeriesProgress tracks completion of one owned series
type SeriesProgress struct {
	SeriesName string `json:"series_name"`
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
}
