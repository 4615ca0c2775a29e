package repository

import (
	"peregrine-backend/internal/model"

	"gorm.io/gorm"
)

type DashboardStats struct {
	Branches      int64 `json:"branches"`
	Contracts     int64 `json:"contracts"`
	Guards        int64 `json:"guards"`
	Accidents     int64 `json:"accidents"`
	Users         int64 `json:"users"`
	PendingLeaves int64 `json:"pendingLeaves"`
}

type DashboardRepository interface {
	GetStats() (*DashboardStats, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

// GetStats counts active rows per aggregate for the admin overview.
func (r *dashboardRepository) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.Branches, r.db.Model(&model.Branch{}).Where("is_active = ?", true)},
		{&stats.Contracts, r.db.Model(&model.Contract{}).Where("status = ?", "active")},
		{&stats.Guards, r.db.Model(&model.Guard{}).Where("is_active = ?", true)},
		{&stats.Accidents, r.db.Model(&model.Accident{})},
		{&stats.Users, r.db.Model(&model.User{}).Where("is_active = ?", true)},
		{&stats.PendingLeaves, r.db.Model(&model.LeaveDay{}).Where("status = ?", "pending")},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}
