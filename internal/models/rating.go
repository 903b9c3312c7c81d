package models

import "time"

type RatingStar struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Value     uint16    `gorm:"not null;default:0" json:"value" example:"5"`
	Ratings   []Rating  `gorm:"foreignKey:StarID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RatingStar) TableName() string {
	return "rating_stars"
}

// Rating is one visitor's star for a movie; a visitor is identified by IP.
type Rating struct {
	ID        uint        `gorm:"primaryKey" json:"id" example:"1"`
	IP        string      `gorm:"column:ip;size:45;not null;uniqueIndex:idx_ratings_ip_movie" json:"ip" example:"203.0.113.7"`
	StarID    uint        `gorm:"not null;index" json:"star_id" example:"5"`
	Star      *RatingStar `gorm:"foreignKey:StarID" json:"star,omitempty"`
	MovieID   uint        `gorm:"not null;uniqueIndex:idx_ratings_ip_movie" json:"movie_id" example:"1"`
	Movie     *Movie      `gorm:"foreignKey:MovieID" json:"movie,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (Rating) TableName() string {
	return "ratings"
}
