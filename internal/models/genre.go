package models

import "time"

type Genre struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name        string    `gorm:"size:160;not null;index" json:"name" example:"Drama"`
	Description string    `gorm:"type:text" json:"description"`
	URL         string    `gorm:"size:160;uniqueIndex;not null" json:"url" example:"drama"`
	Movies      []Movie   `gorm:"many2many:movie_genres;" json:"movies,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Genre) TableName() string {
	return "genres"
}
