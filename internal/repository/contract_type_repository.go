package repository

import (
	"peregrine-backend/internal/model"

	"gorm.io/gorm"
)

type ContractTypeRepository interface {
	GetAll() ([]model.ContractType, error)
	Create(contractType *model.ContractType) error
}

type contractTypeRepository struct {
	db *gorm.DB
}

func NewContractTypeRepository(db *gorm.DB) ContractTypeRepository {
	return &contractTypeRepository{db}
}

func (r *contractTypeRepository) GetAll() ([]model.ContractType, error) {
	var types []model.ContractType
	err := r.db.Find(&types).Error
	return types, err
}

func (r *contractTypeRepository) Create(contractType *model.ContractType) error {
	return classify(r.db.Create(contractType).Error)
}
