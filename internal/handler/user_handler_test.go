package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"peregrine-backend/internal/model"
	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newUserApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	h := NewUserHandler(repository.NewUserRepository(db))
	app.Get("/api/users", h.GetAll)
	app.Get("/api/users/:id", h.GetByID)
	app.Post("/api/users", h.Create)
	app.Put("/api/users/:id", h.Update)
	app.Delete("/api/users/:id", h.Delete)
	return app
}

func TestUserCreateHashesPassword(t *testing.T) {
	db := setupTestDB(t)
	app := newUserApp(db)

	resp := request(t, app, http.MethodPost, "/api/users",
		`{"username":"sara","displayName":"سارة","email":"sara@peregrine.com","password":"Secret@1","role":"support"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.StatusCode)
	}

	var payload struct {
		User struct {
			ID       uuid.UUID `json:"id"`
			Username string    `json:"username"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.User.ID == uuid.Nil {
		t.Fatal("expected assigned user id")
	}

	var stored model.User
	if err := db.First(&stored, "id = ?", payload.User.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.PasswordHash == "Secret@1" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Secret@1")); err != nil {
		t.Fatalf("hash does not match password: %v", err)
	}
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	app := newUserApp(db)

	body := `{"username":"sara","displayName":"سارة","email":"sara@peregrine.com","password":"Secret@1","role":"support"}`
	if resp := request(t, app, http.MethodPost, "/api/users", body); resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.StatusCode)
	}

	resp := request(t, app, http.MethodPost, "/api/users", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.StatusCode)
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Message != "اسم المستخدم موجود بالفعل" {
		t.Fatalf("unexpected message %q", payload.Message)
	}
}

func TestUserUpdateKeepsUsername(t *testing.T) {
	db := setupTestDB(t)
	app := newUserApp(db)
	repo := repository.NewUserRepository(db)

	user := &model.User{Username: "omar", DisplayName: "عمر", Role: "client", IsActive: true}
	if err := repo.Create(user, "Secret@1"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	resp := request(t, app, http.MethodPut, "/api/users/"+user.ID.String(),
		`{"username":"hacked","displayName":"عمر المحدث","email":"omar@peregrine.com","role":"support","isActive":false}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}

	var stored model.User
	if err := db.First(&stored, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.Username != "omar" {
		t.Fatalf("username should be immutable, got %q", stored.Username)
	}
	if stored.DisplayName != "عمر المحدث" || stored.Role != "support" || stored.IsActive {
		t.Fatalf("unexpected values after update: %+v", stored)
	}
}

func TestUserDeleteRemovesRow(t *testing.T) {
	db := setupTestDB(t)
	app := newUserApp(db)
	repo := repository.NewUserRepository(db)

	user := &model.User{Username: "temp", DisplayName: "مؤقت", Role: "client", IsActive: true}
	if err := repo.Create(user, "Secret@1"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	resp := request(t, app, http.MethodDelete, "/api/users/"+user.ID.String(), "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}

	var count int64
	if err := db.Model(&model.User{}).Where("id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatal("expected row to be gone")
	}

	resp = request(t, app, http.MethodDelete, "/api/users/"+user.ID.String(), "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.StatusCode)
	}
}
