package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"barky/internal/model"
	"barky/internal/repository"
	"barky/internal/storage"
)

const (
	defaultLanguage = "text"
	rawURLExpiry    = 15 * time.Minute
)

var languageExt = map[string]string{
	"go":         ".go",
	"python":     ".py",
	"javascript": ".js",
	"typescript": ".ts",
	"shell":      ".sh",
	"sql":        ".sql",
	"rust":       ".rs",
	"java":       ".java",
}

// SnippetInput carries the fields of a new snippet.
type SnippetInput struct {
	Title    string `json:"title"`
	Language string `json:"language"`
	Code     string `json:"code"`
}

// SnippetListResult is the service-level DTO for snippet listings.
type SnippetListResult struct {
	Count   int             `json:"count"`
	Results []model.Snippet `json:"results"`
}

// SnippetService defines the use cases for handling code snippets.
type SnippetService interface {
	// Create stores the code body in object storage, then saves metadata to the database.
	// The object is removed again if the database insert fails.
	Create(ctx context.Context, in SnippetInput) (*model.Snippet, error)

	// List returns snippet metadata without code bodies.
	List(ctx context.Context) (*SnippetListResult, error)

	// Get returns a single snippet including its code.
	Get(ctx context.Context, id int64) (*model.Snippet, error)

	// RawURL returns a short-lived download link for the code body.
	RawURL(ctx context.Context, id int64) (string, error)

	// Delete removes a snippet from both storage and repository.
	Delete(ctx context.Context, id int64) error
}

type snippetService struct {
	store storage.Storage
	repo  repository.SnippetRepository
}

// NewSnippetService constructs a new SnippetService.
func NewSnippetService(store storage.Storage, repo repository.SnippetRepository) SnippetService {
	return &snippetService{store: store, repo: repo}
}

func (s *snippetService) Create(ctx context.Context, in SnippetInput) (*model.Snippet, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}
	if in.Code == "" {
		return nil, ErrCodeRequired
	}
	lang := strings.ToLower(strings.TrimSpace(in.Language))
	if lang == "" {
		lang = defaultLanguage
	}

	key := path.Join("snippets", uuid.NewString()+extFor(lang))
	objInfo, err := s.store.Put(ctx, key, strings.NewReader(in.Code), storage.PutObjectOptions{
		Size:        int64(len(in.Code)),
		ContentType: "text/plain; charset=utf-8",
		Metadata: map[string]string{
			"title":    in.Title,
			"language": lang,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	stored, err := s.repo.Create(ctx, &model.Snippet{
		Title:       in.Title,
		Language:    lang,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
	})
	if err != nil {
		if delErr := s.store.Delete(ctx, objInfo.Key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	stored.Code = in.Code
	return stored, nil
}

func (s *snippetService) List(ctx context.Context) (*SnippetListResult, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &SnippetListResult{Count: len(items), Results: items}, nil
}

func (s *snippetService) Get(ctx context.Context, id int64) (*model.Snippet, error) {
	snip, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	body, _, err := s.store.Get(ctx, snip.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("read storage: %w", err)
	}
	defer body.Close()

	code, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read storage: %w", err)
	}
	snip.Code = string(code)
	return snip, nil
}

func (s *snippetService) RawURL(ctx context.Context, id int64) (string, error) {
	snip, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, snip.StoragePath, rawURLExpiry)
}

// Delete removes the object first; if that fails the row is kept so the body is not orphaned.
func (s *snippetService) Delete(ctx context.Context, id int64) error {
	snip, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, snip.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}

func (s *snippetService) find(ctx context.Context, id int64) (*model.Snippet, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	snip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return snip, nil
}

func extFor(lang string) string {
	if ext, ok := languageExt[lang]; ok {
		return ext
	}
	return ".txt"
}
