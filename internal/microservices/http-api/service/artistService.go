package service

import (
	"context"

	"tunahub/internal/microservices/http-api/models"
	"tunahub/internal/microservices/http-api/repository"
)

type ArtistService interface {
	GetAll(ctx context.Context) ([]models.Artist, error)
	GetByID(ctx context.Context, id int64) (*models.Artist, error)
	Create(ctx context.Context, a *models.Artist) error
	Update(ctx context.Context, id int64, a *models.Artist) error
	Delete(ctx context.Context, id int64) error
}

type artistService struct {
	repo *repository.ArtistRepo
}

func NewArtistService(r *repository.ArtistRepo) ArtistService {
	return &artistService{repo: r}
}

func (s *artistService) GetAll(ctx context.Context) ([]models.Artist, error) {
	return s.repo.GetAll(ctx)
}

func (s *artistService) GetByID(ctx context.Context, id int64) (*models.Artist, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Artist")
	}
	return a, nil
}

// Create stores a new artist. A fresh artist owns no songs yet.
func (s *artistService) Create(ctx context.Context, a *models.Artist) error {
	if err := s.repo.Create(ctx, a); err != nil {
		return err
	}
	a.Songs = []models.Song{}
	return nil
}

func (s *artistService) Update(ctx context.Context, id int64, a *models.Artist) error {
	return translate(s.repo.Update(ctx, id, a), "Artist")
}

func (s *artistService) Delete(ctx context.Context, id int64) error {
	return translate(s.repo.Delete(ctx, id), "Artist")
}
