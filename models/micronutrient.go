package models

import "gorm.io/gorm"

type Micronutrient struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null"`
	Unit string `gorm:"not null"` // mg, μg, …
}

// Declared micronutrient content of a food, per standard serving.
type FoodMicronutrient struct {
	gorm.Model
	FoodID          uint    `gorm:"index;not null"` // FK → foods.id
	MicronutrientID uint    `gorm:"index;not null"` // FK → micronutrients.id
	Amount          float64 `gorm:"not null"`
}
