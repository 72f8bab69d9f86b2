package models

// explicit join model with its own id; rows go away with either side
type SongGenre struct {
	ID      int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	SongID  int64 `json:"song_id" gorm:"index;not null"`
	GenreID int64 `json:"genre_id" gorm:"index;not null"`

	Song  Song  `json:"song,omitempty"`
	Genre Genre `json:"genre,omitempty"`
}

func (SongGenre) TableName() string {
	return "song_genres"
}

// All lists every model in dependency order for migrations.
func All() []interface{} {
	return []interface{}{
		&Artist{},
		&Song{},
		&Genre{},
		&SongGenre{},
	}
}
