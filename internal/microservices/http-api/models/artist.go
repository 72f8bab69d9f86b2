package models

type Artist struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"not null"`
	Age  int    `json:"age" gorm:"not null"`
	Bio  string `json:"bio" gorm:"type:text;not null"`

	// association; removing an artist removes its songs
	Songs []Song `json:"songs,omitempty" gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE;"`
}

func (Artist) TableName() string {
	return "artists"
}
