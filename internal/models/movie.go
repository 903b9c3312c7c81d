package models

import (
	"time"

	"gorm.io/gorm"
)

const DefaultMovieYear = 2020

type Movie struct {
	ID            uint        `gorm:"primaryKey" json:"id" example:"1"`
	Title         string      `gorm:"size:100;not null;index" json:"title" example:"Casablanca"`
	Tagline       string      `gorm:"size:100;not null;default:''" json:"tagline" example:"Where love and intrigue meet"`
	Description   string      `gorm:"type:text" json:"description"`
	Poster        string      `json:"poster" example:"http://localhost:9000/catalog/movies/casablanca_1a2b3c4d.jpg"`
	Year          uint16      `gorm:"not null;default:2020;index" json:"year" example:"1942"`
	Country       string      `gorm:"size:50" json:"country" example:"USA"`
	WorldPremiere time.Time   `gorm:"type:date" json:"world_premiere"`
	Budget        uint64      `gorm:"not null;default:0" json:"budget" example:"1000000"`
	FeesInUSA     uint64      `gorm:"column:fees_in_usa;not null;default:0" json:"fees_in_usa"`
	FeesInWorld   uint64      `gorm:"column:fees_in_world;not null;default:0" json:"fees_in_world"`
	CategoryID    *uint       `gorm:"index" json:"category_id"`
	Category      *Category   `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	URL           string      `gorm:"size:160;uniqueIndex;not null" json:"url" example:"casablanca"`
	Draft         bool        `gorm:"not null;default:false;index" json:"draft" example:"false"`
	Actors        []Actor     `gorm:"many2many:movie_actors;" json:"actors,omitempty"`
	Directors     []Actor     `gorm:"many2many:movie_directors;" json:"directors,omitempty"`
	Genres        []Genre     `gorm:"many2many:movie_genres;" json:"genres,omitempty"`
	Shots         []MovieShot `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"shots,omitempty"`
	Reviews       []Review    `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	Ratings       []Rating    `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt     time.Time   `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

// BeforeCreate fills the year and premiere date defaults.
func (m *Movie) BeforeCreate(tx *gorm.DB) error {
	if m.Year == 0 {
		m.Year = DefaultMovieYear
	}
	if m.WorldPremiere.IsZero() {
		m.WorldPremiere = tx.NowFunc().Truncate(24 * time.Hour)
	}
	return nil
}

// RatingSummary aggregates the star values given to one movie.
type RatingSummary struct {
	Average float64 `json:"average" example:"7.5"`
	Count   int64   `json:"count" example:"12"`
}
