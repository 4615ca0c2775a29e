package repository

import (
	"peregrine-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BranchRepository interface {
	GetAll(includeInactive bool) ([]model.Branch, error)
	FindByID(id uuid.UUID) (*model.Branch, error)
	Create(branch *model.Branch) error
	Update(branch *model.Branch) error
	Delete(id uuid.UUID) error
}

type branchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepository{db}
}

func (r *branchRepository) GetAll(includeInactive bool) ([]model.Branch, error) {
	var branches []model.Branch
	query := r.db.Preload("Contracts")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&branches).Error
	return branches, err
}

func (r *branchRepository) FindByID(id uuid.UUID) (*model.Branch, error) {
	var branch model.Branch
	if err := r.db.Preload("Contracts").First(&branch, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &branch, nil
}

func (r *branchRepository) Create(branch *model.Branch) error {
	if branch.ID == uuid.Nil {
		branch.ID = uuid.New()
	}
	return classify(r.db.Create(branch).Error)
}

func (r *branchRepository) Update(branch *model.Branch) error {
	return classify(r.db.Omit(clause.Associations).Save(branch).Error)
}

// Delete deactivates the branch instead of removing the row.
func (r *branchRepository) Delete(id uuid.UUID) error {
	var branch model.Branch
	if err := r.db.First(&branch, "id = ?", id).Error; err != nil {
		return classify(err)
	}
	branch.IsActive = false
	return classify(r.db.Omit(clause.Associations).Save(&branch).Error)
}
