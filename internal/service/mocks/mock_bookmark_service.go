package mocks

import (
	"context"

	"barky/internal/model"
	"barky/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockBookmarkService struct {
	mock.Mock
}

func (m *MockBookmarkService) List(ctx context.Context) (*service.BookmarkListResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BookmarkListResult), args.Error(1)
}

func (m *MockBookmarkService) Create(ctx context.Context, in service.BookmarkInput) (*model.Bookmark, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bookmark), args.Error(1)
}

func (m *MockBookmarkService) Get(ctx context.Context, id int64) (*model.Bookmark, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bookmark), args.Error(1)
}

func (m *MockBookmarkService) Update(ctx context.Context, id int64, in service.BookmarkInput) (*model.Bookmark, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bookmark), args.Error(1)
}

func (m *MockBookmarkService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
