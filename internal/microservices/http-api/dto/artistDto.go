package dto

import "tunahub/internal/microservices/http-api/models"

// ArtistDTO is the body of POST /artists and PUT /artists/:id. Updates are
// full-record, so every field is required on both.
type ArtistDTO struct {
	Name *string `json:"name" binding:"required"`
	Age  *int    `json:"age" binding:"required"`
	Bio  *string `json:"bio" binding:"required"`
}

func (in ArtistDTO) ToModel() models.Artist {
	return models.Artist{
		Name: *in.Name,
		Age:  *in.Age,
		Bio:  *in.Bio,
	}
}

// ArtistSongResponse is a song nested one level under its artist; the
// artist appears only as an id.
type ArtistSongResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Length int    `json:"length"`
	Album  string `json:"album"`
	Artist int64  `json:"artist"`
}

type ArtistResponse struct {
	ID         int64                `json:"id"`
	Name       string               `json:"name"`
	Age        int                  `json:"age"`
	Bio        string               `json:"bio"`
	Songs      []ArtistSongResponse `json:"songs"`
	SongsCount int                  `json:"songs_count"`
}

func ArtistFromModel(a models.Artist) ArtistResponse {
	songs := make([]ArtistSongResponse, 0, len(a.Songs))
	for _, s := range a.Songs {
		songs = append(songs, ArtistSongResponse{
			ID:     s.ID,
			Title:  s.Title,
			Length: s.Length,
			Album:  s.Album,
			Artist: s.ArtistID,
		})
	}
	return ArtistResponse{
		ID:         a.ID,
		Name:       a.Name,
		Age:        a.Age,
		Bio:        a.Bio,
		Songs:      songs,
		SongsCount: len(songs),
	}
}
