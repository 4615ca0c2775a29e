package model

import (
	"time"

	"github.com/google/uuid"
)

type Contract struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	BranchID    uuid.UUID `json:"branchId" gorm:"type:char(36);not null"`
	ClientID    uuid.UUID `json:"clientId" gorm:"type:char(36)"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Status      string    `json:"status" gorm:"size:50;not null"` // active, pending, expired, terminated
	Type        string    `json:"type" gorm:"size:50;not null"`   // security, personal, event, ...
	GuardsCount int       `json:"guardsCount"`
	Value       float64   `json:"value" gorm:"type:decimal(18,2)"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	Branch    *Branch    `json:"branch,omitempty" gorm:"foreignKey:BranchID"`
	Guards    []Guard    `json:"guards" gorm:"foreignKey:ContractID"`
	Accidents []Accident `json:"-" gorm:"foreignKey:ContractID"`
}

// ContractType is a static lookup table, seeded at startup.
type ContractType struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"size:50;not null"`
	ArabicName string `json:"arabicName" gorm:"size:100;not null"`
	IconName   string `json:"iconName" gorm:"size:50"`
}
