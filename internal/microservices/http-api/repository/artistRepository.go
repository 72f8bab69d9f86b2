package repository

import (
	"context"
	"fmt"

	"tunahub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArtistRepo struct {
	db *gorm.DB
}

func NewArtistRepo(db *gorm.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// GetAll returns every artist with its songs preloaded.
func (r *ArtistRepo) GetAll(ctx context.Context) ([]models.Artist, error) {
	var list []models.Artist
	if err := r.db.WithContext(ctx).
		Preload("Songs", orderByID).
		Order("id asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get artists: %w", err)
	}
	return list, nil
}

func (r *ArtistRepo) GetByID(ctx context.Context, id int64) (*models.Artist, error) {
	var a models.Artist
	if err := r.db.WithContext(ctx).Preload("Songs", orderByID).First(&a, id).Error; err != nil {
		return nil, fmt.Errorf("get artist %d: %w", id, err)
	}
	return &a, nil
}

func (r *ArtistRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &models.Artist{}, id)
}

func (r *ArtistRepo) Create(ctx context.Context, a *models.Artist) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error; err != nil {
		return fmt.Errorf("create artist: %w", err)
	}
	// GORM will populate a.ID
	return nil
}

// Update overwrites every mutable column of the artist.
func (r *ArtistRepo) Update(ctx context.Context, id int64, a *models.Artist) error {
	res := r.db.WithContext(ctx).
		Model(&models.Artist{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name": a.Name,
			"age":  a.Age,
			"bio":  a.Bio,
		})
	if res.Error != nil {
		return fmt.Errorf("update artist %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update artist %d: %w", id, gorm.ErrRecordNotFound)
	}
	a.ID = id
	return nil
}

// Delete removes the artist; songs and their genre links go with it via
// the cascading foreign keys.
func (r *ArtistRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &models.Artist{}, id, "artist")
}
