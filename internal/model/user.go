package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username        string    `json:"username" gorm:"size:50;unique;not null"`
	DisplayName     string    `json:"displayName" gorm:"size:100;not null"`
	Email           string    `json:"email" gorm:"size:100"`
	PasswordHash    string    `json:"-" gorm:"not null"`
	Role            string    `json:"role" gorm:"size:50;not null"` // admin, support, client, guard
	ProfileImageUrl string    `json:"profileImageUrl"`
	LastLogin       time.Time `json:"lastLogin"`
	IsActive        bool      `json:"isActive" gorm:"default:true"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

// PermissionsForRole derives the capability set from the stored role.
// Permissions are computed on demand, never persisted.
func PermissionsForRole(role string) map[string]bool {
	return map[string]bool{
		"viewProfile":     true,
		"editProfile":     true,
		"viewReports":     role == "client" || role == "support" || role == "admin",
		"createReports":   role == "support" || role == "admin",
		"manageUsers":     role == "admin",
		"manageClients":   role == "support" || role == "admin",
		"manageGuards":    role == "support" || role == "admin",
		"viewRequests":    role == "support" || role == "admin",
		"processRequests": role == "support" || role == "admin",
	}
}
