package models

import "time"

const ReviewTextMaxLength = 5000

// Review is a visitor comment on a movie. ParentID links a reply to the
// review it answers; it never owns the parent, so deleting a parent only
// clears the link on its replies.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Email     string    `gorm:"size:254;not null" json:"email" example:"viewer@example.com"`
	Name      string    `gorm:"size:100;not null" json:"name" example:"Viewer"`
	Text      string    `gorm:"size:5000;not null" json:"text"`
	ParentID  *uint     `gorm:"index" json:"parent_id"`
	Children  []Review  `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL" json:"children,omitempty"`
	MovieID   uint      `gorm:"not null;index" json:"movie_id" example:"1"`
	Movie     *Movie    `gorm:"foreignKey:MovieID" json:"movie,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}
