package repository

import (
	"context"
	"fmt"

	"tunahub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SongRepo struct {
	db *gorm.DB
}

func NewSongRepo(db *gorm.DB) *SongRepo {
	return &SongRepo{db: db}
}

// withRelations preloads the owning artist and each genre link with its genre.
func (r *SongRepo) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Artist").
		Preload("SongGenres", orderByID).
		Preload("SongGenres.Genre")
}

func (r *SongRepo) GetAll(ctx context.Context) ([]models.Song, error) {
	var list []models.Song
	if err := r.withRelations(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get songs: %w", err)
	}
	return list, nil
}

func (r *SongRepo) GetByID(ctx context.Context, id int64) (*models.Song, error) {
	var s models.Song
	if err := r.withRelations(ctx).First(&s, id).Error; err != nil {
		return nil, fmt.Errorf("get song %d: %w", id, err)
	}
	return &s, nil
}

func (r *SongRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &models.Song{}, id)
}

func (r *SongRepo) Create(ctx context.Context, s *models.Song) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error; err != nil {
		return fmt.Errorf("create song: %w", err)
	}
	return nil
}

// Update overwrites every column, including the artist reference.
func (r *SongRepo) Update(ctx context.Context, id int64, s *models.Song) error {
	res := r.db.WithContext(ctx).
		Model(&models.Song{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":     s.Title,
			"length":    s.Length,
			"album":     s.Album,
			"artist_id": s.ArtistID,
		})
	if res.Error != nil {
		return fmt.Errorf("update song %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update song %d: %w", id, gorm.ErrRecordNotFound)
	}
	s.ID = id
	return nil
}

func (r *SongRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &models.Song{}, id, "song")
}
