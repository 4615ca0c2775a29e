package model

import (
	"time"

	"github.com/google/uuid"
)

type Guard struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name            string    `json:"name" gorm:"size:100;not null"`
	BadgeNumber     string    `json:"badgeNumber" gorm:"size:50;not null"`
	PhoneNumber     string    `json:"phoneNumber" gorm:"size:20"`
	ProfileImageUrl string    `json:"profileImageUrl"`
	Specialization  string    `json:"specialization" gorm:"size:100"`
	IsActive        bool      `json:"isActive" gorm:"default:true"`
	ContractID      uuid.UUID `json:"contractId" gorm:"type:char(36);not null"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`

	Contract  *Contract      `json:"contract,omitempty" gorm:"foreignKey:ContractID"`
	Schedule  []WorkSchedule `json:"schedule" gorm:"foreignKey:GuardID"`
	LeaveDays []LeaveDay     `json:"leaveDays" gorm:"foreignKey:GuardID"`
	Accidents []Accident     `json:"-" gorm:"foreignKey:GuardID"`
}

type WorkSchedule struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	GuardID   uuid.UUID `json:"guardId" gorm:"type:char(36);not null"`
	DayOfWeek int       `json:"dayOfWeek"` // 1 = Monday, 7 = Sunday
	StartTime string    `json:"startTime" gorm:"size:10;not null"`
	EndTime   string    `json:"endTime" gorm:"size:10;not null"`
	Location  string    `json:"location" gorm:"size:200"`
}

type LeaveDay struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	GuardID       uuid.UUID  `json:"guardId" gorm:"type:char(36);not null"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       time.Time  `json:"endDate"`
	Reason        string     `json:"reason"`
	Status        string     `json:"status" gorm:"size:50;not null"` // pending, approved, rejected
	ReplacementID *uuid.UUID `json:"replacementId" gorm:"type:char(36)"`

	ReplacementGuard *Guard `json:"replacementGuard,omitempty" gorm:"foreignKey:ReplacementID"`
}
