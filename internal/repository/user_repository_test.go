package repository

import (
	"errors"
	"testing"

	"peregrine-backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestValidateCredentials(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := &model.User{Username: "admin1", DisplayName: "مدير", Role: "admin", IsActive: true}
	if err := repo.Create(user, "Admin@123"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if !repo.ValidateCredentials("admin1", "Admin@123") {
		t.Fatal("expected correct password to validate")
	}
	if repo.ValidateCredentials("admin1", "Admin@124") {
		t.Fatal("wrong password must not validate")
	}
	if repo.ValidateCredentials("ghost", "Admin@123") {
		t.Fatal("unknown username must not validate")
	}
}

func TestUserCreateAssignsID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := &model.User{Username: "sara", DisplayName: "سارة", Role: "support", IsActive: true}
	if err := repo.Create(user, "Secret@1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("expected assigned id")
	}

	// A second user with the same username hits the unique index.
	dup := &model.User{Username: "sara", DisplayName: "أخرى", Role: "client", IsActive: true}
	err := repo.Create(dup, "Secret@2")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserDeleteIsHard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := &model.User{Username: "temp", DisplayName: "مؤقت", Role: "client", IsActive: true}
	if err := repo.Create(user, "Secret@1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	if err := db.Unscoped().Model(&model.User{}).Where("id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatal("expected row removed entirely")
	}

	if err := repo.Delete(user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
