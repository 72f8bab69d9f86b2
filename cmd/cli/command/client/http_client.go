package client

// http_client.go = talks to the tunahub catalog API over HTTP/JSON.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tunahub/internal/microservices/http-api/dto"
)

// HTTPClient is a thin JSON client for the catalog endpoints.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Request bodies. Every field is sent, since updates replace whole records.
type ArtistRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	Bio  string `json:"bio"`
}

type SongRequest struct {
	Title  string `json:"title"`
	Length int    `json:"length"`
	Album  string `json:"album"`
	Artist int64  `json:"artist"`
}

type GenreRequest struct {
	Description string `json:"description"`
}

type SongGenreRequest struct {
	Song  int64 `json:"song"`
	Genre int64 `json:"genre"`
}

// APIError is a non-2xx reply from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("api returned %d: %s", e.Status, e.Message)
}

// constructor for HTTP client
func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// do sends body (if any) as JSON and decodes a 2xx reply into out (if any).
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() // Ensure the response body is closed

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg dto.MessageResponse
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		return &APIError{Status: resp.StatusCode, Message: msg.Message}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Artists

func (c *HTTPClient) ListArtists(ctx context.Context) ([]dto.ArtistResponse, error) {
	var out []dto.ArtistResponse
	if err := c.do(ctx, http.MethodGet, "/artists", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetArtist(ctx context.Context, id int64) (*dto.ArtistResponse, error) {
	var out dto.ArtistResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/artists/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateArtist(ctx context.Context, in ArtistRequest) (*dto.ArtistResponse, error) {
	var out dto.ArtistResponse
	if err := c.do(ctx, http.MethodPost, "/artists", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateArtist(ctx context.Context, id int64, in ArtistRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/artists/%d", id), in, nil)
}

func (c *HTTPClient) DeleteArtist(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/artists/%d", id), nil, nil)
}

// Songs

func (c *HTTPClient) ListSongs(ctx context.Context) ([]dto.SongResponse, error) {
	var out []dto.SongResponse
	if err := c.do(ctx, http.MethodGet, "/songs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetSong(ctx context.Context, id int64) (*dto.SongResponse, error) {
	var out dto.SongResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/songs/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateSong(ctx context.Context, in SongRequest) (*dto.SongResponse, error) {
	var out dto.SongResponse
	if err := c.do(ctx, http.MethodPost, "/songs", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateSong(ctx context.Context, id int64, in SongRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/songs/%d", id), in, nil)
}

func (c *HTTPClient) DeleteSong(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/songs/%d", id), nil, nil)
}

// Genres

func (c *HTTPClient) ListGenres(ctx context.Context) ([]dto.GenreResponse, error) {
	var out []dto.GenreResponse
	if err := c.do(ctx, http.MethodGet, "/genres", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetGenre(ctx context.Context, id int64) (*dto.GenreResponse, error) {
	var out dto.GenreResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/genres/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateGenre(ctx context.Context, in GenreRequest) (*dto.GenreResponse, error) {
	var out dto.GenreResponse
	if err := c.do(ctx, http.MethodPost, "/genres", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateGenre(ctx context.Context, id int64, in GenreRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/genres/%d", id), in, nil)
}

func (c *HTTPClient) DeleteGenre(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/genres/%d", id), nil, nil)
}

// Song <-> genre links

func (c *HTTPClient) ListSongGenres(ctx context.Context) ([]dto.SongGenreResponse, error) {
	var out []dto.SongGenreResponse
	if err := c.do(ctx, http.MethodGet, "/songgenres", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) LinkSongGenre(ctx context.Context, in SongGenreRequest) (*dto.SongGenreResponse, error) {
	var out dto.SongGenreResponse
	if err := c.do(ctx, http.MethodPost, "/songgenres", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UnlinkSongGenre(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/songgenres/%d", id), nil, nil)
}
