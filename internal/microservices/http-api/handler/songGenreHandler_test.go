package handler_test

import (
	"net/http"
	"testing"

	"tunahub/internal/microservices/http-api/handler"
	"tunahub/internal/microservices/http-api/models"
	"tunahub/internal/microservices/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSongGenreHandler(t *testing.T) {
	mockService := new(MockSongGenreService)
	r := setupRouter("/songgenres", handler.NewSongGenreHandler(mockService))

	t.Run("Create", func(t *testing.T) {
		mockService.On("Create", mock.Anything, &models.SongGenre{SongID: 1, GenreID: 2}).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.SongGenre).ID = 3
			}).Return(nil).Once()

		w := doRequest(r, http.MethodPost, "/songgenres", map[string]interface{}{"song": 1, "genre": 2})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":3,"song":1,"genre":2}`, w.Body.String())
	})

	t.Run("CreateUnknownGenre", func(t *testing.T) {
		mockService.On("Create", mock.Anything, &models.SongGenre{SongID: 1, GenreID: 9}).
			Return(&service.LookupError{Entity: "Genre", Kind: service.ErrReferenceNotFound}).Once()

		w := doRequest(r, http.MethodPost, "/songgenres", map[string]interface{}{"song": 1, "genre": 9})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Genre matching query does not exist."}`, w.Body.String())
	})

	t.Run("Retrieve", func(t *testing.T) {
		mockService.On("GetByID", mock.Anything, int64(3)).Return(&models.SongGenre{ID: 3, SongID: 1, GenreID: 2}, nil).Once()

		w := doRequest(r, http.MethodGet, "/songgenres/3", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":3,"song":1,"genre":2}`, w.Body.String())
	})

	t.Run("Destroy", func(t *testing.T) {
		mockService.On("Delete", mock.Anything, int64(3)).Return(nil).Once()

		w := doRequest(r, http.MethodDelete, "/songgenres/3", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	mockService.AssertExpectations(t)
}
