package models

import (
	"time"

	"gorm.io/gorm"
)

// One consumption event of a catalog food. Quantity is a serving
// multiplier against the food's per-serving macros.
type MacroLog struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"` // FK → users.id
	FoodID    uint      `gorm:"index;not null"` // FK → foods.id
	Quantity  float64   `gorm:"not null"`
	Timestamp time.Time `gorm:"index;not null"`
}

// One direct micronutrient consumption event. Amount is absolute,
// in the micronutrient's own unit.
type MicroLog struct {
	gorm.Model
	UserID          uint      `gorm:"index;not null"` // FK → users.id
	MicronutrientID uint      `gorm:"index;not null"` // FK → micronutrients.id
	Amount          float64   `gorm:"not null"`
	Timestamp       time.Time `gorm:"index;not null"`
}
