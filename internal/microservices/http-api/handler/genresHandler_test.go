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

func TestGenreHandler_Create(t *testing.T) {
	mockService := new(MockGenreService)
	r := setupRouter("/genres", handler.NewGenreHandler(mockService))

	mockService.On("Create", mock.Anything, mock.MatchedBy(func(g *models.Genre) bool {
		return g.Description == "Rock"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Genre).ID = 1
	}).Return(nil).Once()

	w := doRequest(r, http.MethodPost, "/genres", map[string]interface{}{"description": "Rock"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"description":"Rock","songs":[]}`, w.Body.String())

	w = doRequest(r, http.MethodPost, "/genres", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.AssertExpectations(t)
}

func TestGenreHandler_Retrieve(t *testing.T) {
	mockService := new(MockGenreService)
	r := setupRouter("/genres", handler.NewGenreHandler(mockService))

	t.Run("Success", func(t *testing.T) {
		genre := &models.Genre{
			ID: 1, Description: "Rock",
			SongGenres: []models.SongGenre{
				{ID: 1, SongID: 1, GenreID: 1, Song: models.Song{ID: 1, Title: "T", Length: 200, Album: "Al", ArtistID: 1}},
			},
		}
		mockService.On("GetByID", mock.Anything, int64(1)).Return(genre, nil).Once()

		w := doRequest(r, http.MethodGet, "/genres/1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"id": 1, "description": "Rock",
			"songs": [{"id": 1, "title": "T", "artist": 1, "album": "Al", "length": 200}]
		}`, w.Body.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService.On("GetByID", mock.Anything, int64(5)).
			Return(nil, &service.LookupError{Entity: "Genre", Kind: service.ErrNotFound}).Once()

		w := doRequest(r, http.MethodGet, "/genres/5", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Genre matching query does not exist."}`, w.Body.String())
	})
}

func TestGenreHandler_UpdateDestroyList(t *testing.T) {
	mockService := new(MockGenreService)
	r := setupRouter("/genres", handler.NewGenreHandler(mockService))

	mockService.On("Update", mock.Anything, int64(1), &models.Genre{Description: "Blues"}).Return(nil).Once()
	w := doRequest(r, http.MethodPut, "/genres/1", map[string]interface{}{"description": "Blues"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	mockService.On("Delete", mock.Anything, int64(1)).Return(nil).Once()
	w = doRequest(r, http.MethodDelete, "/genres/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	mockService.On("GetAll", mock.Anything).Return([]models.Genre{{ID: 2, Description: "Jazz"}}, nil).Once()
	w = doRequest(r, http.MethodGet, "/genres", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":2,"description":"Jazz","songs":[]}]`, w.Body.String())

	mockService.AssertExpectations(t)
}
