package models

import "time"

// MovieShot is a promotional still attached to a movie.
type MovieShot struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title       string    `gorm:"size:100;not null" json:"title" example:"Rick's Cafe"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `json:"image"`
	MovieID     uint      `gorm:"not null;index" json:"movie_id" example:"1"`
	Movie       *Movie    `gorm:"foreignKey:MovieID" json:"movie,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (MovieShot) TableName() string {
	return "movie_shots"
}
