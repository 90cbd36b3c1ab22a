package mocks

import (
	"context"

	"barky/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockBookmarkRepository struct {
	mock.Mock
}

func (m *MockBookmarkRepository) Add(ctx context.Context, b *model.Bookmark) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookmarkRepository) Get(ctx context.Context, id int64) (*model.Bookmark, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) List(ctx context.Context) ([]model.Bookmark, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) Update(ctx context.Context, b *model.Bookmark) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookmarkRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
