package service

import (
	"context"

	"tunahub/internal/microservices/http-api/models"
	"tunahub/internal/microservices/http-api/repository"
)

type GenreService interface {
	GetAll(ctx context.Context) ([]models.Genre, error)
	GetByID(ctx context.Context, id int64) (*models.Genre, error)
	Create(ctx context.Context, g *models.Genre) error
	Update(ctx context.Context, id int64, g *models.Genre) error
	Delete(ctx context.Context, id int64) error
}

type genreService struct {
	repo *repository.GenreRepo
}

func NewGenreService(r *repository.GenreRepo) GenreService {
	return &genreService{repo: r}
}

func (s *genreService) GetAll(ctx context.Context) ([]models.Genre, error) {
	return s.repo.GetAll(ctx)
}

func (s *genreService) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Genre")
	}
	return g, nil
}

func (s *genreService) Create(ctx context.Context, g *models.Genre) error {
	if err := s.repo.Create(ctx, g); err != nil {
		return err
	}
	g.SongGenres = []models.SongGenre{}
	return nil
}

func (s *genreService) Update(ctx context.Context, id int64, g *models.Genre) error {
	return translate(s.repo.Update(ctx, id, g), "Genre")
}

func (s *genreService) Delete(ctx context.Context, id int64) error {
	return translate(s.repo.Delete(ctx, id), "Genre")
}
