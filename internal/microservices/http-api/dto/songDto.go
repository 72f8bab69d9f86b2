package dto

import "tunahub/internal/microservices/http-api/models"

// SongDTO is the body of POST /songs and PUT /songs/:id. Artist is the
// owning artist's id.
type SongDTO struct {
	Title  *string `json:"title" binding:"required"`
	Length *int    `json:"length" binding:"required"`
	Album  *string `json:"album" binding:"required"`
	Artist *int64  `json:"artist" binding:"required"`
}

func (in SongDTO) ToModel() models.Song {
	return models.Song{
		Title:    *in.Title,
		Length:   *in.Length,
		Album:    *in.Album,
		ArtistID: *in.Artist,
	}
}

type SongArtistResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
	Bio  string `json:"bio"`
}

type SongGenreSummary struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// SongResponse carries the artist as a one-element list. Clients depend on
// that shape.
type SongResponse struct {
	ID     int64                `json:"id"`
	Title  string               `json:"title"`
	Artist []SongArtistResponse `json:"artist"`
	Length int                  `json:"length"`
	Album  string               `json:"album"`
	Genres []SongGenreSummary   `json:"genres"`
}

func SongFromModel(s models.Song) SongResponse {
	genres := make([]SongGenreSummary, 0, len(s.SongGenres))
	for _, sg := range s.SongGenres {
		genres = append(genres, SongGenreSummary{
			ID:          sg.Genre.ID,
			Description: sg.Genre.Description,
		})
	}
	return SongResponse{
		ID:    s.ID,
		Title: s.Title,
		Artist: []SongArtistResponse{{
			ID:   s.Artist.ID,
			Name: s.Artist.Name,
			Age:  s.Artist.Age,
			Bio:  s.Artist.Bio,
		}},
		Length: s.Length,
		Album:  s.Album,
		Genres: genres,
	}
}
