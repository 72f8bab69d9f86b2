package service

import (
	"context"

	"tunahub/internal/microservices/http-api/models"
	"tunahub/internal/microservices/http-api/repository"
)

type SongService interface {
	GetAll(ctx context.Context) ([]models.Song, error)
	GetByID(ctx context.Context, id int64) (*models.Song, error)
	Create(ctx context.Context, song *models.Song) (*models.Song, error)
	Update(ctx context.Context, id int64, song *models.Song) error
	Delete(ctx context.Context, id int64) error
}

type songService struct {
	repo    *repository.SongRepo
	artists *repository.ArtistRepo
}

func NewSongService(r *repository.SongRepo, artists *repository.ArtistRepo) SongService {
	return &songService{repo: r, artists: artists}
}

func (s *songService) GetAll(ctx context.Context) ([]models.Song, error) {
	return s.repo.GetAll(ctx)
}

func (s *songService) GetByID(ctx context.Context, id int64) (*models.Song, error) {
	song, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Song")
	}
	return song, nil
}

// Create checks the artist, inserts the song and reloads it with its
// relations. The lookup and the insert are separate statements.
func (s *songService) Create(ctx context.Context, song *models.Song) (*models.Song, error) {
	if err := s.requireArtist(ctx, song.ArtistID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, song); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, song.ID)
}

func (s *songService) Update(ctx context.Context, id int64, song *models.Song) error {
	// the song itself is checked first so a missing song wins over a bad artist
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("Song")
	}
	if err := s.requireArtist(ctx, song.ArtistID); err != nil {
		return err
	}
	return translate(s.repo.Update(ctx, id, song), "Song")
}

func (s *songService) Delete(ctx context.Context, id int64) error {
	return translate(s.repo.Delete(ctx, id), "Song")
}

func (s *songService) requireArtist(ctx context.Context, id int64) error {
	ok, err := s.artists.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return referenceNotFound("Artist")
	}
	return nil
}
