package service

import (
	"context"

	"tunahub/internal/microservices/http-api/models"
	"tunahub/internal/microservices/http-api/repository"
)

type SongGenreService interface {
	GetAll(ctx context.Context) ([]models.SongGenre, error)
	GetByID(ctx context.Context, id int64) (*models.SongGenre, error)
	Create(ctx context.Context, sg *models.SongGenre) error
	Update(ctx context.Context, id int64, sg *models.SongGenre) error
	Delete(ctx context.Context, id int64) error
}

type songGenreService struct {
	repo   *repository.SongGenreRepo
	songs  *repository.SongRepo
	genres *repository.GenreRepo
}

func NewSongGenreService(r *repository.SongGenreRepo, songs *repository.SongRepo, genres *repository.GenreRepo) SongGenreService {
	return &songGenreService{repo: r, songs: songs, genres: genres}
}

func (s *songGenreService) GetAll(ctx context.Context) ([]models.SongGenre, error) {
	return s.repo.GetAll(ctx)
}

func (s *songGenreService) GetByID(ctx context.Context, id int64) (*models.SongGenre, error) {
	sg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "SongGenre")
	}
	return sg, nil
}

func (s *songGenreService) Create(ctx context.Context, sg *models.SongGenre) error {
	if err := s.requireRefs(ctx, sg); err != nil {
		return err
	}
	return s.repo.Create(ctx, sg)
}

func (s *songGenreService) Update(ctx context.Context, id int64, sg *models.SongGenre) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.requireRefs(ctx, sg); err != nil {
		return err
	}
	return translate(s.repo.Update(ctx, id, sg), "SongGenre")
}

func (s *songGenreService) Delete(ctx context.Context, id int64) error {
	return translate(s.repo.Delete(ctx, id), "SongGenre")
}

func (s *songGenreService) requireRefs(ctx context.Context, sg *models.SongGenre) error {
	ok, err := s.songs.Exists(ctx, sg.SongID)
	if err != nil {
		return err
	}
	if !ok {
		return referenceNotFound("Song")
	}
	ok, err = s.genres.Exists(ctx, sg.GenreID)
	if err != nil {
		return err
	}
	if !ok {
		return referenceNotFound("Genre")
	}
	return nil
}
