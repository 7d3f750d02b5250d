package entities

import (
	"github.com/google/uuid"
)

type FoodScan struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ImageURL    string    `json:"image_url"`
	CalorieInfo string    `gorm:"type:text" json:"calorie_info"`
	Status      string    `json:"status"` // "Pending", "Completed", "Failed"

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
