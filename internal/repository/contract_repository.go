package repository

import (
	"peregrine-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContractRepository interface {
	GetAll(status, contractType string) ([]model.Contract, error)
	FindByID(id uuid.UUID) (*model.Contract, error)
	GetByBranchID(branchID uuid.UUID) ([]model.Contract, error)
	Create(contract *model.Contract) error
	Update(contract *model.Contract) error
	Delete(id uuid.UUID) error
}

type contractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db}
}

// GetAll filters by exact status and type, combined with AND when both
// are given.
func (r *contractRepository) GetAll(status, contractType string) ([]model.Contract, error) {
	var contracts []model.Contract
	query := r.db.Preload("Branch").Preload("Guards")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if contractType != "" {
		query = query.Where("type = ?", contractType)
	}
	err := query.Find(&contracts).Error
	return contracts, err
}

func (r *contractRepository) FindByID(id uuid.UUID) (*model.Contract, error) {
	var contract model.Contract
	if err := r.db.Preload("Branch").Preload("Guards").First(&contract, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &contract, nil
}

func (r *contractRepository) GetByBranchID(branchID uuid.UUID) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.Preload("Guards").Where("branch_id = ?", branchID).Find(&contracts).Error
	return contracts, err
}

func (r *contractRepository) Create(contract *model.Contract) error {
	if contract.ID == uuid.Nil {
		contract.ID = uuid.New()
	}
	return classify(r.db.Create(contract).Error)
}

func (r *contractRepository) Update(contract *model.Contract) error {
	return classify(r.db.Omit(clause.Associations).Save(contract).Error)
}

// Delete marks the contract terminated instead of removing the row.
func (r *contractRepository) Delete(id uuid.UUID) error {
	var contract model.Contract
	if err := r.db.First(&contract, "id = ?", id).Error; err != nil {
		return classify(err)
	}
	contract.Status = "terminated"
	return classify(r.db.Omit(clause.Associations).Save(&contract).Error)
}
