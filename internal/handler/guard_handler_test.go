package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"peregrine-backend/internal/model"
	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newGuardApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	h := NewGuardHandler(repository.NewGuardRepository(db))
	app.Get("/api/guards", h.GetAll)
	app.Get("/api/guards/contract/:contractId", h.GetByContract)
	app.Get("/api/guards/:id", h.GetByID)
	app.Post("/api/guards", h.Create)
	app.Put("/api/guards/leaves/:leaveId/status", h.UpdateLeaveStatus)
	app.Put("/api/guards/:id", h.Update)
	app.Delete("/api/guards/:id", h.Delete)
	app.Post("/api/guards/:id/schedules", h.AddSchedule)
	app.Post("/api/guards/:id/leaves", h.AddLeave)
	return app
}

func seedGuard(t *testing.T, db *gorm.DB, contractID uuid.UUID) model.Guard {
	t.Helper()
	guard := model.Guard{
		ID: uuid.New(), Name: "أحمد", BadgeNumber: "G-100",
		ContractID: contractID, IsActive: true,
	}
	if err := db.Create(&guard).Error; err != nil {
		t.Fatalf("seed guard: %v", err)
	}
	return guard
}

func TestGuardCreateWithSchedule(t *testing.T) {
	db := setupTestDB(t)
	app := newGuardApp(db)
	branch := seedBranch(t, db)
	contract := seedContract(t, db, branch.ID, "active", "security")

	resp := request(t, app, http.MethodPost, "/api/guards",
		`{"name":"خالد","badgeNumber":"G-1","phoneNumber":"0500000000","contractId":"`+contract.ID.String()+`","schedule":[{"dayOfWeek":1,"startTime":"08:00","endTime":"16:00","location":"البوابة"},{"dayOfWeek":2,"startTime":"08:00","endTime":"16:00","location":"البوابة"}]}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.StatusCode)
	}

	var payload struct {
		Guard model.Guard `json:"guard"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Guard.ID == uuid.Nil {
		t.Fatal("expected assigned guard id")
	}

	// Schedule entries land in the same commit.
	var count int64
	if err := db.Model(&model.WorkSchedule{}).Where("guard_id = ?", payload.Guard.ID).Count(&count).Error; err != nil {
		t.Fatalf("count schedules: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 schedule rows, got %d", count)
	}
}

func TestGuardSoftDelete(t *testing.T) {
	db := setupTestDB(t)
	app := newGuardApp(db)
	branch := seedBranch(t, db)
	contract := seedContract(t, db, branch.ID, "active", "security")
	guard := seedGuard(t, db, contract.ID)

	resp := request(t, app, http.MethodDelete, "/api/guards/"+guard.ID.String(), "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}

	// Excluded from the default listing but still fetchable by id.
	var list struct {
		Total int `json:"total"`
	}
	resp = request(t, app, http.MethodGet, "/api/guards", "")
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Total != 0 {
		t.Fatalf("expected empty default listing, got total=%d", list.Total)
	}

	resp = request(t, app, http.MethodGet, "/api/guards?includeInactive=true", "")
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("expected inactive guard in full listing, got total=%d", list.Total)
	}

	resp = request(t, app, http.MethodGet, "/api/guards/"+guard.ID.String(), "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
}

func TestGuardAddLeaveStartsPending(t *testing.T) {
	db := setupTestDB(t)
	app := newGuardApp(db)
	branch := seedBranch(t, db)
	contract := seedContract(t, db, branch.ID, "active", "security")
	guard := seedGuard(t, db, contract.ID)

	// The client-supplied status is ignored.
	resp := request(t, app, http.MethodPost, "/api/guards/"+guard.ID.String()+"/leaves",
		`{"startDate":"2026-09-01T00:00:00Z","endDate":"2026-09-05T00:00:00Z","reason":"ظروف عائلية","status":"approved"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}

	var payload struct {
		LeaveDay model.LeaveDay `json:"leaveDay"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.LeaveDay.Status != "pending" {
		t.Fatalf("expected pending, got %q", payload.LeaveDay.Status)
	}
}

func TestGuardAddScheduleMissingGuard(t *testing.T) {
	db := setupTestDB(t)
	app := newGuardApp(db)

	resp := request(t, app, http.MethodPost, "/api/guards/"+uuid.NewString()+"/schedules",
		`{"dayOfWeek":3,"startTime":"08:00","endTime":"16:00","location":"المدخل"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.StatusCode)
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Message != "الحارس غير موجود" {
		t.Fatalf("unexpected message %q", payload.Message)
	}
}

func TestGuardUpdateLeaveStatus(t *testing.T) {
	db := setupTestDB(t)
	app := newGuardApp(db)
	branch := seedBranch(t, db)
	contract := seedContract(t, db, branch.ID, "active", "security")
	guard := seedGuard(t, db, contract.ID)

	leave := model.LeaveDay{GuardID: guard.ID, Reason: "إجازة سنوية", Status: "pending"}
	if err := db.Create(&leave).Error; err != nil {
		t.Fatalf("seed leave: %v", err)
	}

	resp := request(t, app, http.MethodPut, fmt.Sprintf("/api/guards/leaves/%d/status", leave.ID), `{"status":"approved"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}

	var stored model.LeaveDay
	if err := db.First(&stored, leave.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.Status != "approved" {
		t.Fatalf("expected approved, got %q", stored.Status)
	}

	// Unknown leave ids surface as not found.
	resp = request(t, app, http.MethodPut, "/api/guards/leaves/999/status", `{"status":"rejected"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.StatusCode)
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Message != "الإجازة غير موجودة" {
		t.Fatalf("unexpected message %q", payload.Message)
	}
}
