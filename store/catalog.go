package store

import (
	"context"
	"errors"
	"fmt"

	"nutritrack/models"

	"gorm.io/gorm"
)

// ---------- Foods ----------

// CreateFood is idempotent by name: if the food already exists, the
// existing row is returned and the macro values are left untouched.
func (s *Store) CreateFood(ctx context.Context, name string, calories, protein, carbs, fat float64) (*models.Food, error) {
	existing, err := s.FindFoodByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	food := &models.Food{Name: name, Calories: calories, Protein: protein, Carbs: carbs, Fat: fat}
	if err := s.db.WithContext(ctx).Create(food).Error; err != nil {
		return nil, fmt.Errorf("create food %q: %w", name, err)
	}
	return food, nil
}

func (s *Store) FindFoodByName(ctx context.Context, name string) (*models.Food, error) {
	var food models.Food
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find food %q: %w", name, err)
	}
	return &food, nil
}

func (s *Store) ListFoods(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foods, nil
}

func (s *Store) CreateFoodSource(ctx context.Context, foodID uint, sourceName, externalID string) (*models.FoodSource, error) {
	src := &models.FoodSource{FoodID: foodID, SourceName: sourceName, ExternalID: externalID}
	if err := s.db.WithContext(ctx).Create(src).Error; err != nil {
		return nil, fmt.Errorf("add source %q to food %d: %w", sourceName, foodID, err)
	}
	return src, nil
}

func (s *Store) ListFoodSources(ctx context.Context, foodID uint) ([]models.FoodSource, error) {
	var sources []models.FoodSource
	if err := s.db.WithContext(ctx).Where("food_id = ?", foodID).Find(&sources).Error; err != nil {
		return nil, fmt.Errorf("list sources for food %d: %w", foodID, err)
	}
	return sources, nil
}

// ---------- Micronutrients ----------

// CreateMicronutrient is idempotent by name.
func (s *Store) CreateMicronutrient(ctx context.Context, name, unit string) (*models.Micronutrient, error) {
	existing, err := s.FindMicronutrientByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	micro := &models.Micronutrient{Name: name, Unit: unit}
	if err := s.db.WithContext(ctx).Create(micro).Error; err != nil {
		return nil, fmt.Errorf("create micronutrient %q: %w", name, err)
	}
	return micro, nil
}

func (s *Store) FindMicronutrientByName(ctx context.Context, name string) (*models.Micronutrient, error) {
	var micro models.Micronutrient
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&micro).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find micronutrient %q: %w", name, err)
	}
	return &micro, nil
}

// CreateFoodMicronutrient is idempotent per (food, micronutrient) pair.
func (s *Store) CreateFoodMicronutrient(ctx context.Context, foodID, micronutrientID uint, amount float64) (*models.FoodMicronutrient, error) {
	var existing models.FoodMicronutrient
	err := s.db.WithContext(ctx).
		Where("food_id = ? AND micronutrient_id = ?", foodID, micronutrientID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find food micronutrient: %w", err)
	}

	fm := &models.FoodMicronutrient{FoodID: foodID, MicronutrientID: micronutrientID, Amount: amount}
	if err := s.db.WithContext(ctx).Create(fm).Error; err != nil {
		return nil, fmt.Errorf("link micronutrient %d to food %d: %w", micronutrientID, foodID, err)
	}
	return fm, nil
}

func (s *Store) ListFoodMicronutrients(ctx context.Context, foodID uint) ([]models.FoodMicronutrient, error) {
	var rows []models.FoodMicronutrient
	if err := s.db.WithContext(ctx).Where("food_id = ?", foodID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list micronutrients for food %d: %w", foodID, err)
	}
	return rows, nil
}
