package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"booktracker/internal/book"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestRouting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := book.NewMockRepository(ctrl)
	router := newRouter(book.NewHTTPHandler(book.NewService(mockRepo)))

	t.Run("GET /books is registered", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GET /stats is registered", func(t *testing.T) {
		mockRepo.EXPECT().Stats(gomock.Any()).Return(book.Stats{}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("path values reach the handlers", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), "some-id").Return(book.ErrNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/books/some-id", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown path", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/books", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}
