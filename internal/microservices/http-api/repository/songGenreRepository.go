package repository

import (
	"context"
	"fmt"

	"tunahub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SongGenreRepo struct {
	db *gorm.DB
}

func NewSongGenreRepo(db *gorm.DB) *SongGenreRepo {
	return &SongGenreRepo{db: db}
}

func (r *SongGenreRepo) GetAll(ctx context.Context) ([]models.SongGenre, error) {
	var list []models.SongGenre
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get song genres: %w", err)
	}
	return list, nil
}

func (r *SongGenreRepo) GetByID(ctx context.Context, id int64) (*models.SongGenre, error) {
	var sg models.SongGenre
	if err := r.db.WithContext(ctx).First(&sg, id).Error; err != nil {
		return nil, fmt.Errorf("get song genre %d: %w", id, err)
	}
	return &sg, nil
}

func (r *SongGenreRepo) Create(ctx context.Context, sg *models.SongGenre) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(sg).Error; err != nil {
		return fmt.Errorf("create song genre: %w", err)
	}
	return nil
}

func (r *SongGenreRepo) Update(ctx context.Context, id int64, sg *models.SongGenre) error {
	res := r.db.WithContext(ctx).
		Model(&models.SongGenre{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"song_id":  sg.SongID,
			"genre_id": sg.GenreID,
		})
	if res.Error != nil {
		return fmt.Errorf("update song genre %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update song genre %d: %w", id, gorm.ErrRecordNotFound)
	}
	sg.ID = id
	return nil
}

func (r *SongGenreRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &models.SongGenre{}, id, "song genre")
}
