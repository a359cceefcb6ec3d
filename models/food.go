package models

import "gorm.io/gorm"

// A catalog food; macro values are per standard serving.
type Food struct {
	gorm.Model
	Name     string  `gorm:"uniqueIndex;not null"`
	Calories float64 `gorm:"not null"`
	Protein  float64 `gorm:"not null"`
	Carbs    float64 `gorm:"not null"`
	Fat      float64 `gorm:"not null"`
}

// Where a food's nutrition figures came from (e.g. a USDA entry).
type FoodSource struct {
	gorm.Model
	FoodID     uint   `gorm:"index;not null"` // FK → foods.id
	SourceName string `gorm:"not null"`
	ExternalID string `gorm:"not null"` // ID in the external database
}
