package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"tunahub/internal/microservices/http-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICES ---

type MockArtistService struct {
	mock.Mock
}

func (m *MockArtistService) GetAll(ctx context.Context) ([]models.Artist, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Artist), args.Error(1)
}

func (m *MockArtistService) GetByID(ctx context.Context, id int64) (*models.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

func (m *MockArtistService) Create(ctx context.Context, a *models.Artist) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockArtistService) Update(ctx context.Context, id int64, a *models.Artist) error {
	args := m.Called(ctx, id, a)
	return args.Error(0)
}

func (m *MockArtistService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSongService struct {
	mock.Mock
}

func (m *MockSongService) GetAll(ctx context.Context) ([]models.Song, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Song), args.Error(1)
}

func (m *MockSongService) GetByID(ctx context.Context, id int64) (*models.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Song), args.Error(1)
}

func (m *MockSongService) Create(ctx context.Context, s *models.Song) (*models.Song, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Song), args.Error(1)
}

func (m *MockSongService) Update(ctx context.Context, id int64, s *models.Song) error {
	args := m.Called(ctx, id, s)
	return args.Error(0)
}

func (m *MockSongService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockGenreService struct {
	mock.Mock
}

func (m *MockGenreService) GetAll(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockGenreService) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

func (m *MockGenreService) Create(ctx context.Context, g *models.Genre) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGenreService) Update(ctx context.Context, id int64, g *models.Genre) error {
	args := m.Called(ctx, id, g)
	return args.Error(0)
}

func (m *MockGenreService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSongGenreService struct {
	mock.Mock
}

func (m *MockSongGenreService) GetAll(ctx context.Context) ([]models.SongGenre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.SongGenre), args.Error(1)
}

func (m *MockSongGenreService) GetByID(ctx context.Context, id int64) (*models.SongGenre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SongGenre), args.Error(1)
}

func (m *MockSongGenreService) Create(ctx context.Context, sg *models.SongGenre) error {
	args := m.Called(ctx, sg)
	return args.Error(0)
}

func (m *MockSongGenreService) Update(ctx context.Context, id int64, sg *models.SongGenre) error {
	args := m.Called(ctx, id, sg)
	return args.Error(0)
}

func (m *MockSongGenreService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- HELPERS ---

type routeRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

func setupRouter(path string, h routeRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r.Group(path))
	return r
}

func doRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
