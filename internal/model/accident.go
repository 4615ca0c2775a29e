package model

import (
	"time"

	"github.com/google/uuid"
)

// Accident is a security incident report filed against a guard and a contract.
type Accident struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"not null"`
	Type        string    `json:"type" gorm:"size:50;not null"`
	DateTime    time.Time `json:"dateTime"` // server-assigned at creation
	Status      string    `json:"status" gorm:"size:50;not null"`
	Location    string    `json:"location" gorm:"size:200"`
	MediaUrls   []string  `json:"mediaUrls" gorm:"serializer:json"`
	GuardID     uuid.UUID `json:"guardId" gorm:"type:char(36);not null"`
	ContractID  uuid.UUID `json:"contractId" gorm:"type:char(36);not null"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	Guard    *Guard    `json:"guard,omitempty" gorm:"foreignKey:GuardID"`
	Contract *Contract `json:"contract,omitempty" gorm:"foreignKey:ContractID"`
	Comments []Comment `json:"comments" gorm:"foreignKey:AccidentID"`
}

type Comment struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	AccidentID     uuid.UUID `json:"accidentId" gorm:"type:char(36);not null"`
	Content        string    `json:"content" gorm:"not null"`
	Author         string    `json:"author" gorm:"size:100;not null"`
	DateTime       time.Time `json:"dateTime"` // server-assigned at creation
	IsAdminComment bool      `json:"isAdminComment"`
}
