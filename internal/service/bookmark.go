package service

import (
	"context"
	"strings"

	"barky/internal/model"
	"barky/internal/repository"
)

// BookmarkInput carries the user-editable bookmark fields.
type BookmarkInput struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Notes string `json:"notes"`
}

func (in BookmarkInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(in.URL) == "" {
		return ErrURLRequired
	}
	return nil
}

// BookmarkListResult is the service-level DTO for bookmark listings.
type BookmarkListResult struct {
	Count   int              `json:"count"`
	Results []model.Bookmark `json:"results"`
}

// BookmarkService defines the use cases for handling bookmarks.
type BookmarkService interface {
	List(ctx context.Context) (*BookmarkListResult, error)
	Create(ctx context.Context, in BookmarkInput) (*model.Bookmark, error)
	Get(ctx context.Context, id int64) (*model.Bookmark, error)

	// Update returns ErrNotFound for unknown IDs instead of relying on the
	// repository's silent no-op.
	Update(ctx context.Context, id int64, in BookmarkInput) (*model.Bookmark, error)

	Delete(ctx context.Context, id int64) error
}

type bookmarkService struct {
	repo repository.BookmarkRepository
}

// NewBookmarkService constructs a new BookmarkService.
func NewBookmarkService(repo repository.BookmarkRepository) BookmarkService {
	return &bookmarkService{repo: repo}
}

func (s *bookmarkService) List(ctx context.Context) (*BookmarkListResult, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &BookmarkListResult{Count: len(items), Results: items}, nil
}

func (s *bookmarkService) Create(ctx context.Context, in BookmarkInput) (*model.Bookmark, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	b := &model.Bookmark{Title: in.Title, URL: in.URL, Notes: in.Notes}
	if err := s.repo.Add(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookmarkService) Get(ctx context.Context, id int64) (*model.Bookmark, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *bookmarkService) Update(ctx context.Context, id int64, in BookmarkInput) (*model.Bookmark, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Title = in.Title
	current.URL = in.URL
	current.Notes = in.Notes
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *bookmarkService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
