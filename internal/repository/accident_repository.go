package repository

import (
	"time"

	"peregrine-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccidentRepository interface {
	GetAll(accidentType, status string) ([]model.Accident, error)
	FindByID(id uuid.UUID) (*model.Accident, error)
	GetByGuardID(guardID uuid.UUID) ([]model.Accident, error)
	GetByContractID(contractID uuid.UUID) ([]model.Accident, error)
	Create(accident *model.Accident) error
	Update(accident *model.Accident) error
	UpdateStatus(id uuid.UUID, status string) error
	AddComment(accidentID uuid.UUID, comment *model.Comment) error
}

type accidentRepository struct {
	db *gorm.DB
}

func NewAccidentRepository(db *gorm.DB) AccidentRepository {
	return &accidentRepository{db}
}

func (r *accidentRepository) GetAll(accidentType, status string) ([]model.Accident, error) {
	var accidents []model.Accident
	query := r.db.Preload("Guard").Preload("Contract").Preload("Comments")
	if accidentType != "" {
		query = query.Where("type = ?", accidentType)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&accidents).Error
	return accidents, err
}

func (r *accidentRepository) FindByID(id uuid.UUID) (*model.Accident, error) {
	var accident model.Accident
	err := r.db.Preload("Guard").Preload("Contract").Preload("Comments").
		First(&accident, "id = ?", id).Error
	if err != nil {
		return nil, classify(err)
	}
	return &accident, nil
}

func (r *accidentRepository) GetByGuardID(guardID uuid.UUID) ([]model.Accident, error) {
	var accidents []model.Accident
	err := r.db.Preload("Comments").Where("guard_id = ?", guardID).Find(&accidents).Error
	return accidents, err
}

func (r *accidentRepository) GetByContractID(contractID uuid.UUID) ([]model.Accident, error) {
	var accidents []model.Accident
	err := r.db.Preload("Guard").Preload("Comments").
		Where("contract_id = ?", contractID).Find(&accidents).Error
	return accidents, err
}

// Create stamps the occurrence time with the server clock, overriding
// anything the caller supplied.
func (r *accidentRepository) Create(accident *model.Accident) error {
	if accident.ID == uuid.Nil {
		accident.ID = uuid.New()
	}
	accident.DateTime = time.Now()
	return classify(r.db.Create(accident).Error)
}

func (r *accidentRepository) Update(accident *model.Accident) error {
	return classify(r.db.Omit(clause.Associations).Save(accident).Error)
}

func (r *accidentRepository) UpdateStatus(id uuid.UUID, status string) error {
	var accident model.Accident
	if err := r.db.First(&accident, "id = ?", id).Error; err != nil {
		return classify(err)
	}
	accident.Status = status
	return classify(r.db.Omit(clause.Associations).Save(&accident).Error)
}

// AddComment stamps the comment time with the server clock and fails
// with ErrNotFound when the accident does not exist.
func (r *accidentRepository) AddComment(accidentID uuid.UUID, comment *model.Comment) error {
	var accident model.Accident
	if err := r.db.First(&accident, "id = ?", accidentID).Error; err != nil {
		return classify(err)
	}
	comment.AccidentID = accidentID
	comment.DateTime = time.Now()
	return classify(r.db.Create(comment).Error)
}
