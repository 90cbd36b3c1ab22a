package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"

	"barky/internal/model"
	repoMocks "barky/internal/repository/mocks"
	"barky/internal/storage"
	storeMocks "barky/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSnippetService_Create(t *testing.T) {
	ctx := context.Background()
	code := `print("hello, world")`

	tests := []struct {
		name       string
		in         SnippetInput
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockSnippetRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			in:   SnippetInput{Title: "Sample Snippet", Language: "Python", Code: code},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockSnippetRepository) {
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "snippets/") && strings.HasSuffix(key, ".py")
				}), mock.Anything, storage.PutObjectOptions{
					Size:        int64(len(code)),
					ContentType: "text/plain; charset=utf-8",
					Metadata:    map[string]string{"title": "Sample Snippet", "language": "python"},
				}).Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
					return storage.ObjectInfo{Key: key, Size: opt.Size}
				}, nil)

				mRepo.On("Create", ctx, mock.MatchedBy(func(s *model.Snippet) bool {
					return s.Title == "Sample Snippet" && s.Language == "python" && s.Size == int64(len(code))
				})).Return(&model.Snippet{ID: 1, Title: "Sample Snippet", Language: "python"}, nil)
			},
		},
		{
			name:       "missing title",
			in:         SnippetInput{Code: code},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockSnippetRepository) {},
			wantErr:    ErrTitleRequired,
		},
		{
			name:       "missing code",
			in:         SnippetInput{Title: "Empty"},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockSnippetRepository) {},
			wantErr:    ErrCodeRequired,
		},
		{
			name: "storage error",
			in:   SnippetInput{Title: "Sample Snippet", Code: code},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockSnippetRepository) {
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name: "repository error with successful rollback",
			in:   SnippetInput{Title: "Sample Snippet", Code: code},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockSnippetRepository) {
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{Key: "snippets/x.txt"}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, "snippets/x.txt").Return(nil)
			},
			wantErrMsg: "db save failed: db fail",
		},
		{
			name: "repository error with failed rollback",
			in:   SnippetInput{Title: "Sample Snippet", Code: code},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockSnippetRepository) {
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{Key: "snippets/x.txt"}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, "snippets/x.txt").Return(errors.New("delete fail"))
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockSnippetRepository)
			tt.setupMocks(mStore, mRepo)
			svc := NewSnippetService(mStore, mRepo)

			snip, err := svc.Create(ctx, tt.in)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, code, snip.Code)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestSnippetService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("loads code from storage", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockSnippetRepository)
		svc := NewSnippetService(mStore, mRepo)

		mRepo.On("FindByID", ctx, int64(1)).Return(&model.Snippet{ID: 1, StoragePath: "snippets/1.py"}, nil)
		mStore.On("Get", ctx, "snippets/1.py").
			Return(io.NopCloser(strings.NewReader("print(1)")), storage.ObjectInfo{Key: "snippets/1.py"}, nil)

		snip, err := svc.Get(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "print(1)", snip.Code)
		mStore.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockSnippetRepository)
		svc := NewSnippetService(nil, mRepo)
		mRepo.On("FindByID", ctx, int64(2)).Return(nil, sql.ErrNoRows)

		_, err := svc.Get(ctx, 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("storage error", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockSnippetRepository)
		svc := NewSnippetService(mStore, mRepo)

		mRepo.On("FindByID", ctx, int64(3)).Return(&model.Snippet{ID: 3, StoragePath: "snippets/3.txt"}, nil)
		mStore.On("Get", ctx, "snippets/3.txt").Return(nil, storage.ObjectInfo{}, errors.New("gone"))

		_, err := svc.Get(ctx, 3)
		assert.EqualError(t, err, "read storage: gone")
	})

	t.Run("validation - zero id", func(t *testing.T) {
		svc := NewSnippetService(nil, nil)
		_, err := svc.Get(ctx, 0)
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}

func TestSnippetService_List(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockSnippetRepository)
	svc := NewSnippetService(nil, mRepo)

	mRepo.On("List", ctx).Return([]model.Snippet{{ID: 1, Title: "Snippet One"}, {ID: 2, Title: "Snippet Two"}}, nil)

	res, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	mRepo.AssertExpectations(t)
}

func TestSnippetService_RawURL(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStorage)
	mRepo := new(repoMocks.MockSnippetRepository)
	svc := NewSnippetService(mStore, mRepo)

	mRepo.On("FindByID", ctx, int64(1)).Return(&model.Snippet{ID: 1, StoragePath: "snippets/1.go"}, nil)
	mStore.On("PresignGet", ctx, "snippets/1.go", rawURLExpiry).Return("https://minio.local/snippets/1.go?sig=x", nil)

	u, err := svc.RawURL(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, "https://minio.local/snippets/1.go?sig=x", u)
	mStore.AssertExpectations(t)
}

func TestSnippetService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         int64
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockSnippetRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   1,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockSnippetRepository) {
				mRepo.On("FindByID", ctx, int64(1)).Return(&model.Snippet{ID: 1, StoragePath: "path/to/obj"}, nil)
				mStore.On("Delete", ctx, "path/to/obj").Return(nil)
				mRepo.On("Delete", ctx, int64(1)).Return(nil)
			},
		},
		{
			name: "not found",
			id:   2,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockSnippetRepository) {
				mRepo.On("FindByID", ctx, int64(2)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "storage delete error keeps the row",
			id:   3,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockSnippetRepository) {
				mRepo.On("FindByID", ctx, int64(3)).Return(&model.Snippet{ID: 3, StoragePath: "path"}, nil)
				mStore.On("Delete", ctx, "path").Return(errors.New("storage fail"))
			},
			wantErr: errors.New("delete storage: storage fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockSnippetRepository)
			tt.setupMocks(mStore, mRepo)
			svc := NewSnippetService(mStore, mRepo)

			err := svc.Delete(ctx, tt.id)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
			} else {
				assert.NoError(t, err)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}
