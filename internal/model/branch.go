package model

import (
	"time"

	"github.com/google/uuid"
)

type Branch struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Address      string    `json:"address" gorm:"size:200;not null"`
	PhoneNumber  string    `json:"phoneNumber" gorm:"size:20"`
	ManagerName  string    `json:"managerName" gorm:"size:100"`
	ManagerEmail string    `json:"managerEmail" gorm:"size:100"`
	ManagerPhone string    `json:"managerPhone" gorm:"size:20"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`

	Contracts []Contract `json:"contracts" gorm:"foreignKey:BranchID"`
}
