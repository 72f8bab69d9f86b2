package models

type Song struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Title    string `json:"title" gorm:"not null"`
	Length   int    `json:"length" gorm:"not null"`
	Album    string `json:"album" gorm:"not null"`
	ArtistID int64  `json:"artist_id" gorm:"index;not null"`

	// associations
	Artist     Artist      `json:"artist,omitempty"`
	SongGenres []SongGenre `json:"song_genres,omitempty" gorm:"foreignKey:SongID;constraint:OnDelete:CASCADE;"`
}

func (Song) TableName() string {
	return "songs"
}
