package repository

import (
	"context"
	"fmt"

	"tunahub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GenreRepo struct {
	db *gorm.DB
}

func NewGenreRepo(db *gorm.DB) *GenreRepo {
	return &GenreRepo{db: db}
}

// withSongs preloads each genre link together with the linked song.
func (r *GenreRepo) withSongs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("SongGenres", orderByID).
		Preload("SongGenres.Song")
}

func (r *GenreRepo) GetAll(ctx context.Context) ([]models.Genre, error) {
	var list []models.Genre
	if err := r.withSongs(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}
	return list, nil
}

func (r *GenreRepo) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	var g models.Genre
	if err := r.withSongs(ctx).First(&g, id).Error; err != nil {
		return nil, fmt.Errorf("get genre %d: %w", id, err)
	}
	return &g, nil
}

func (r *GenreRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &models.Genre{}, id)
}

func (r *GenreRepo) Create(ctx context.Context, g *models.Genre) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(g).Error; err != nil {
		return fmt.Errorf("create genre: %w", err)
	}
	return nil
}

func (r *GenreRepo) Update(ctx context.Context, id int64, g *models.Genre) error {
	res := r.db.WithContext(ctx).
		Model(&models.Genre{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"description": g.Description})
	if res.Error != nil {
		return fmt.Errorf("update genre %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update genre %d: %w", id, gorm.ErrRecordNotFound)
	}
	g.ID = id
	return nil
}

// Delete removes the genre and, by cascade, its song links. Songs stay.
func (r *GenreRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &models.Genre{}, id, "genre")
}
