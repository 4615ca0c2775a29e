package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"peregrine-backend/internal/model"
	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newContractTypeApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	h := NewContractTypeHandler(repository.NewContractTypeRepository(db))
	app.Get("/api/contract-types", h.GetAll)
	app.Post("/api/contract-types", h.Create)
	return app
}

func TestContractTypeCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	app := newContractTypeApp(db)

	resp := request(t, app, http.MethodPost, "/api/contract-types",
		`{"name":"security","arabicName":"خدمة حراسة","iconName":"shield"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.StatusCode)
	}
	var created struct {
		Type model.ContractType `json:"type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Type.ID == 0 {
		t.Fatal("expected assigned id")
	}

	resp = request(t, app, http.MethodGet, "/api/contract-types", "")
	var list struct {
		Types []model.ContractType `json:"types"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Types) != 1 || list.Types[0].ArabicName != "خدمة حراسة" {
		t.Fatalf("unexpected listing %+v", list.Types)
	}

	// Arabic name missing fails validation.
	resp = request(t, app, http.MethodPost, "/api/contract-types", `{"name":"other"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.StatusCode)
	}
}
