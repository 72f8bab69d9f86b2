package models

type Genre struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Description string `json:"description" gorm:"not null"`

	SongGenres []SongGenre `json:"song_genres,omitempty" gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE;"`
}

func (Genre) TableName() string {
	return "genres"
}
