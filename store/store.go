package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nutritrack/models"

	"gorm.io/gorm"
)

// Store is the adapter between the report/generator services and the
// relational store. Absence is a nil result, never an error; a non-nil
// error always means the underlying read or write itself failed.
type Store struct{ db *gorm.DB }

func New(db *gorm.DB) *Store { return &Store{db: db} }

// ---------- Users ----------

func (s *Store) CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	user := &models.User{Username: username, Email: email, PasswordHash: passwordHash}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user %q: %w", username, err)
	}
	return user, nil
}

func (s *Store) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &user, nil
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}
	return &user, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ---------- Macro logs ----------

// MacroLogEntry is one consumption log joined with its food's catalog
// row. Relationships resolve through this explicit join, not through
// model back-pointers.
type MacroLogEntry struct {
	LogID     uint
	FoodName  string
	Calories  float64 // per serving
	Protein   float64
	Carbs     float64
	Fat       float64
	Quantity  float64
	Timestamp time.Time
}

// ListMacroLogs returns a user's logs with timestamp in [start, end],
// both ends inclusive, ordered by timestamp ascending.
func (s *Store) ListMacroLogs(ctx context.Context, userID uint, start, end time.Time) ([]MacroLogEntry, error) {
	var rows []MacroLogEntry
	err := s.db.WithContext(ctx).
		Model(&models.MacroLog{}).
		Select("macro_logs.id AS log_id, foods.name AS food_name, foods.calories, foods.protein, foods.carbs, foods.fat, macro_logs.quantity, macro_logs.timestamp").
		Joins("JOIN foods ON foods.id = macro_logs.food_id").
		Where("macro_logs.user_id = ? AND macro_logs.timestamp >= ? AND macro_logs.timestamp <= ?", userID, start, end).
		Order("macro_logs.timestamp ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list macro logs for user %d: %w", userID, err)
	}
	return rows, nil
}

func (s *Store) CreateMacroLog(ctx context.Context, userID, foodID uint, quantity float64) (*models.MacroLog, error) {
	log := &models.MacroLog{
		UserID:    userID,
		FoodID:    foodID,
		Quantity:  quantity,
		Timestamp: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(log).Error; err != nil {
		return nil, fmt.Errorf("log food %d for user %d: %w", foodID, userID, err)
	}
	return log, nil
}

// SetMacroLogTimestamp backdates a log after creation; the test-data
// generator uses it to place logs into specific meal slots.
func (s *Store) SetMacroLogTimestamp(ctx context.Context, logID uint, ts time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&models.MacroLog{}).
		Where("id = ?", logID).
		Update("timestamp", ts).Error
	if err != nil {
		return fmt.Errorf("set timestamp on log %d: %w", logID, err)
	}
	return nil
}

// ---------- Micro logs ----------

func (s *Store) CreateMicroLog(ctx context.Context, userID, micronutrientID uint, amount float64) (*models.MicroLog, error) {
	log := &models.MicroLog{
		UserID:          userID,
		MicronutrientID: micronutrientID,
		Amount:          amount,
		Timestamp:       time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(log).Error; err != nil {
		return nil, fmt.Errorf("log micronutrient %d for user %d: %w", micronutrientID, userID, err)
	}
	return log, nil
}

func (s *Store) ListMicroLogs(ctx context.Context, userID uint, start, end time.Time) ([]models.MicroLog, error) {
	var logs []models.MicroLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, start, end).
		Order("timestamp ASC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list micro logs for user %d: %w", userID, err)
	}
	return logs, nil
}
