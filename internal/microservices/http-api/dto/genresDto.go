package dto

import "tunahub/internal/microservices/http-api/models"

// GenreDTO for POST /genres and PUT /genres/:id
type GenreDTO struct {
	Description *string `json:"description" binding:"required"`
}

func (in GenreDTO) ToModel() models.Genre {
	return models.Genre{Description: *in.Description}
}

// GenreSongResponse flattens a linked song; artist is the artist id.
type GenreSongResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Artist int64  `json:"artist"`
	Album  string `json:"album"`
	Length int    `json:"length"`
}

type GenreResponse struct {
	ID          int64               `json:"id"`
	Description string              `json:"description"`
	Songs       []GenreSongResponse `json:"songs"`
}

func GenreFromModel(g models.Genre) GenreResponse {
	songs := make([]GenreSongResponse, 0, len(g.SongGenres))
	for _, sg := range g.SongGenres {
		songs = append(songs, GenreSongResponse{
			ID:     sg.Song.ID,
			Title:  sg.Song.Title,
			Artist: sg.Song.ArtistID,
			Album:  sg.Song.Album,
			Length: sg.Song.Length,
		})
	}
	return GenreResponse{
		ID:          g.ID,
		Description: g.Description,
		Songs:       songs,
	}
}
