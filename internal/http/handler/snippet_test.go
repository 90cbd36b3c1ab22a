package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"barky/internal/model"
	"barky/internal/service"
	serviceMocks "barky/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListSnippets(t *testing.T) {
	mockSvc := new(serviceMocks.MockSnippetService)
	app := fiber.New()
	app.Get("/snippets", ListSnippets(mockSvc))

	mockSvc.On("List", mock.Anything).Return(&service.SnippetListResult{
		Count:   2,
		Results: []model.Snippet{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}},
	}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/snippets", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var res service.SnippetListResult
	json.NewDecoder(resp.Body).Decode(&res)
	assert.Equal(t, 2, res.Count)
	mockSvc.AssertExpectations(t)
}

func TestCreateSnippet(t *testing.T) {
	mockSvc := new(serviceMocks.MockSnippetService)
	app := fiber.New()
	app.Post("/snippets", CreateSnippet(mockSvc))

	t.Run("created", func(t *testing.T) {
		in := service.SnippetInput{Title: "hello", Language: "go", Code: "package main"}
		mockSvc.On("Create", mock.Anything, in).
			Return(&model.Snippet{ID: 5, Title: "hello", Language: "go", Size: 12}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/snippets", `{"title":"hello","language":"go","code":"package main"}`))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("code required", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, service.SnippetInput{Title: "empty"}).
			Return(nil, service.ErrCodeRequired).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/snippets", `{"title":"empty"}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		in := service.SnippetInput{Title: "x", Code: "y"}
		mockSvc.On("Create", mock.Anything, in).Return(nil, errors.New("minio down")).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/snippets", `{"title":"x","code":"y"}`))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestGetSnippet(t *testing.T) {
	mockSvc := new(serviceMocks.MockSnippetService)
	app := fiber.New()
	app.Get("/snippets/:id", GetSnippet(mockSvc))

	mockSvc.On("Get", mock.Anything, int64(5)).
		Return(&model.Snippet{ID: 5, Title: "hello", Code: "package main"}, nil).Once()
	mockSvc.On("Get", mock.Anything, int64(6)).Return(nil, service.ErrNotFound).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/snippets/5", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var s model.Snippet
	json.NewDecoder(resp.Body).Decode(&s)
	assert.Equal(t, "package main", s.Code)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/snippets/6", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	mockSvc.AssertExpectations(t)
}

func TestSnippetRaw(t *testing.T) {
	mockSvc := new(serviceMocks.MockSnippetService)
	app := fiber.New()
	app.Get("/snippets/:id/raw", SnippetRaw(mockSvc))

	t.Run("redirects", func(t *testing.T) {
		mockSvc.On("RawURL", mock.Anything, int64(5)).
			Return("http://minio:9000/snippets/abc.go?X-Amz-Signature=sig", nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/snippets/5/raw", nil))

		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "http://minio:9000/snippets/abc.go?X-Amz-Signature=sig", resp.Header.Get("Location"))
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("RawURL", mock.Anything, int64(6)).Return("", service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/snippets/6/raw", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestDeleteSnippet(t *testing.T) {
	mockSvc := new(serviceMocks.MockSnippetService)
	app := fiber.New()
	app.Delete("/snippets/:id", DeleteSnippet(mockSvc))

	mockSvc.On("Delete", mock.Anything, int64(5)).Return(nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/snippets/5", nil))

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	mockSvc.AssertExpectations(t)

	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/snippets/nope", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
