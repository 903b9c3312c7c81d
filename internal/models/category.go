package models

import "time"

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name        string    `gorm:"size:160;not null" json:"name" example:"Feature films"`
	Description string    `gorm:"type:text" json:"description"`
	URL         string    `gorm:"size:160;uniqueIndex;not null" json:"url" example:"feature-films"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
