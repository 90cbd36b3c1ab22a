package mocks

import (
	"context"

	"barky/internal/database/sqlite"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateTable(ctx context.Context, table string, columns []sqlite.Column) error {
	args := m.Called(ctx, table, columns)
	return args.Error(0)
}

func (m *MockStore) Add(ctx context.Context, table string, data map[string]any) (int64, error) {
	args := m.Called(ctx, table, data)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) Select(ctx context.Context, table string, criteria map[string]any, orderBy string) ([]sqlite.Record, error) {
	args := m.Called(ctx, table, criteria, orderBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sqlite.Record), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, table string, criteria map[string]any) (int64, error) {
	args := m.Called(ctx, table, criteria)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) Update(ctx context.Context, table string, criteria, data map[string]any) (int64, error) {
	args := m.Called(ctx, table, criteria, data)
	return args.Get(0).(int64), args.Error(1)
}
