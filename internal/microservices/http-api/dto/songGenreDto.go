package dto

import "tunahub/internal/microservices/http-api/models"

// SongGenreDTO links a song to a genre by id.
type SongGenreDTO struct {
	Song  *int64 `json:"song" binding:"required"`
	Genre *int64 `json:"genre" binding:"required"`
}

func (in SongGenreDTO) ToModel() models.SongGenre {
	return models.SongGenre{SongID: *in.Song, GenreID: *in.Genre}
}

type SongGenreResponse struct {
	ID    int64 `json:"id"`
	Song  int64 `json:"song"`
	Genre int64 `json:"genre"`
}

func SongGenreFromModel(sg models.SongGenre) SongGenreResponse {
	return SongGenreResponse{ID: sg.ID, Song: sg.SongID, Genre: sg.GenreID}
}
