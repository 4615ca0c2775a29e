package repository

import (
	"peregrine-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GuardRepository interface {
	GetAll(includeInactive bool) ([]model.Guard, error)
	FindByID(id uuid.UUID) (*model.Guard, error)
	GetByContractID(contractID uuid.UUID) ([]model.Guard, error)
	Create(guard *model.Guard) error
	Update(guard *model.Guard) error
	Delete(id uuid.UUID) error
	AddSchedule(guardID uuid.UUID, schedule *model.WorkSchedule) error
	AddLeave(guardID uuid.UUID, leave *model.LeaveDay) error
	UpdateLeaveStatus(leaveID uint, status string) error
}

type guardRepository struct {
	db *gorm.DB
}

func NewGuardRepository(db *gorm.DB) GuardRepository {
	return &guardRepository{db}
}

func (r *guardRepository) GetAll(includeInactive bool) ([]model.Guard, error) {
	var guards []model.Guard
	query := r.db.Preload("Contract").Preload("Schedule").Preload("LeaveDays")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&guards).Error
	return guards, err
}

func (r *guardRepository) FindByID(id uuid.UUID) (*model.Guard, error) {
	var guard model.Guard
	err := r.db.Preload("Contract").Preload("Schedule").Preload("LeaveDays").
		First(&guard, "id = ?", id).Error
	if err != nil {
		return nil, classify(err)
	}
	return &guard, nil
}

func (r *guardRepository) GetByContractID(contractID uuid.UUID) ([]model.Guard, error) {
	var guards []model.Guard
	err := r.db.Preload("Schedule").Preload("LeaveDays").
		Where("contract_id = ?", contractID).Find(&guards).Error
	return guards, err
}

// Create inserts the guard together with any embedded schedule entries
// in a single commit.
func (r *guardRepository) Create(guard *model.Guard) error {
	if guard.ID == uuid.Nil {
		guard.ID = uuid.New()
	}
	return classify(r.db.Create(guard).Error)
}

func (r *guardRepository) Update(guard *model.Guard) error {
	return classify(r.db.Omit(clause.Associations).Save(guard).Error)
}

// Delete deactivates the guard instead of removing the row.
func (r *guardRepository) Delete(id uuid.UUID) error {
	var guard model.Guard
	if err := r.db.First(&guard, "id = ?", id).Error; err != nil {
		return classify(err)
	}
	guard.IsActive = false
	return classify(r.db.Omit(clause.Associations).Save(&guard).Error)
}

func (r *guardRepository) AddSchedule(guardID uuid.UUID, schedule *model.WorkSchedule) error {
	var guard model.Guard
	if err := r.db.First(&guard, "id = ?", guardID).Error; err != nil {
		return classify(err)
	}
	schedule.GuardID = guardID
	return classify(r.db.Create(schedule).Error)
}

// AddLeave always stores the leave as pending, whatever the caller set.
func (r *guardRepository) AddLeave(guardID uuid.UUID, leave *model.LeaveDay) error {
	var guard model.Guard
	if err := r.db.First(&guard, "id = ?", guardID).Error; err != nil {
		return classify(err)
	}
	leave.GuardID = guardID
	leave.Status = "pending"
	return classify(r.db.Create(leave).Error)
}

func (r *guardRepository) UpdateLeaveStatus(leaveID uint, status string) error {
	var leave model.LeaveDay
	if err := r.db.First(&leave, leaveID).Error; err != nil {
		return classify(err)
	}
	leave.Status = status
	return classify(r.db.Omit(clause.Associations).Save(&leave).Error)
}
