package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/hridaya423/bookify/internal/metadata"
	"github.com/hridaya423/bookify/internal/repository"
	"github.com/hridaya423/bookify/internal/series"
	"github.com/hridaya423/bookify/pkg/models"
)

// SeriesService resolves series groupings from external search
// results and finds gaps in the user's owned series.
type SeriesService interface {
	Search(ctx context.Context, query string) ([]models.SeriesSearchResult, error)
	FindMissing(ctx context.Context, userID, seriesName string) ([]string, error)
}

type seriesService struct {
	bookRepo repository.BookRepository
	searcher metadata.BookSearcher
}

// NewSeriesService creates a new series service
func NewSeriesService(bookRepo repository.BookRepository, searcher metadata.BookSearcher) SeriesService {
	return &seriesService{
		bookRepo: bookRepo,
		searcher: searcher,
	}
}

// Search groups external search candidates into series entries
func (s *seriesService) Search(ctx context.Context, query string) ([]models.SeriesSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.SeriesSearchResult{}, nil
	}

	candidates, err := s.searcher.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("series search failed: %w", err)
	}

	results := series.GroupSearchResults(candidates)
	if results == nil {
		results = []models.SeriesSearchResult{}
	}
	return results, nil
}

// FindMissing suggests unowned volumes for one of the user's series
func (s *seriesService) FindMissing(ctx context.Context, userID, seriesName string) ([]string, error) {
	seriesName = strings.TrimSpace(seriesName)
	if seriesName == "" {
		return []string{}, nil
	}

	books, err := s.bookRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load library: %w", err)
	}

	var owned []models.Book
	for _, b := range books {
		if b.HasSeries() && strings.EqualFold(strings.TrimSpace(b.SeriesName), seriesName) {
			owned = append(owned, b)
		}
	}
	if len(owned) == 0 {
		return []string{}, nil
	}

	// One author query keeps the candidate pool relevant; the gap
	// finder re-checks author and series name per candidate.
	candidates, err := s.searcher.SearchByAuthor(ctx, owned[0].Author)
	if err != nil {
		return nil, fmt.Errorf("missing-volume search failed: %w", err)
	}

	return series.FindMissingSeriesBooks(owned, candidates), nil
}
