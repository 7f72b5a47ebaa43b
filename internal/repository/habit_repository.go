package repository

import (
	"errors"

	"pokehub/backend/internal/models"

	"gorm.io/gorm"
)

// HabitRepository is the gorm-backed habit store.
type HabitRepository struct {
	db *gorm.DB
}

func NewHabitRepository(db *gorm.DB) *HabitRepository {
	return &HabitRepository{db: db}
}

func (r *HabitRepository) Get(id uint) (*models.Habit, error) {
	var habit models.Habit
	err := r.db.First(&habit, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

func (r *HabitRepository) ListByOwner(ownerID uint) ([]models.Habit, error) {
	var habits []models.Habit
	err := r.db.Where("owner_id = ?", ownerID).Find(&habits).Error
	if err != nil {
		return nil, err
	}
	return habits, nil
}

func (r *HabitRepository) Create(habit *models.Habit) error {
	return r.db.Create(habit).Error
}

func (r *HabitRepository) Update(habit *models.Habit) error {
	return r.db.Save(habit).Error
}
