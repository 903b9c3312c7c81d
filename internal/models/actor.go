package models

import "time"

// Actor is a person credited on movies, either in the cast or as a director.
// Both roles point at the same table through separate join tables.
type Actor struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name        string    `gorm:"size:160;not null;index" json:"name" example:"Ingrid Bergman"`
	Age         uint16    `gorm:"not null;default:0" json:"age" example:"67"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `json:"image" example:"http://localhost:9000/catalog/actors/bergman_1a2b3c4d.jpg"`
	ActedIn     []Movie   `gorm:"many2many:movie_actors;" json:"acted_in,omitempty"`
	Directed    []Movie   `gorm:"many2many:movie_directors;" json:"directed,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Actor) TableName() string {
	return "actors"
}
