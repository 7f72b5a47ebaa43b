package repository

import (
	"errors"

	"pokehub/backend/internal/models"

	"gorm.io/gorm"
)

// PokeRepository is the gorm-backed store for poke prototypes and
// sent pokes.
type PokeRepository struct {
	db *gorm.DB
}

func NewPokeRepository(db *gorm.DB) *PokeRepository {
	return &PokeRepository{db: db}
}

func (r *PokeRepository) GetPrototype(id uint) (*models.PokePrototype, error) {
	var prototype models.PokePrototype
	err := r.db.First(&prototype, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prototype, nil
}

func (r *PokeRepository) ListPrototypes(ownerID uint) ([]models.PokePrototype, error) {
	var prototypes []models.PokePrototype
	err := r.db.Where("owner_id = ?", ownerID).Find(&prototypes).Error
	if err != nil {
		return nil, err
	}
	return prototypes, nil
}

func (r *PokeRepository) CreatePrototype(prototype *models.PokePrototype) error {
	return r.db.Create(prototype).Error
}

func (r *PokeRepository) UpdatePrototype(prototype *models.PokePrototype) error {
	return r.db.Save(prototype).Error
}

func (r *PokeRepository) DeletePrototype(id uint) error {
	return r.db.Delete(&models.PokePrototype{}, id).Error
}

func (r *PokeRepository) GetPoke(id uint) (*models.Poke, error) {
	var poke models.Poke
	err := r.db.First(&poke, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &poke, nil
}

func (r *PokeRepository) CreatePoke(poke *models.Poke) error {
	return r.db.Create(poke).Error
}

func (r *PokeRepository) UpdatePoke(poke *models.Poke) error {
	return r.db.Save(poke).Error
}

func (r *PokeRepository) ListPokesBetween(userID, friendID uint) ([]models.Poke, error) {
	var pokes []models.Poke
	err := r.db.
		Where("(owner_id = ? AND target_id = ?) OR (owner_id = ? AND target_id = ?)",
			userID, friendID, friendID, userID).
		Order("created_at").
		Find(&pokes).Error
	if err != nil {
		return nil, err
	}
	return pokes, nil
}
