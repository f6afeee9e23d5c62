package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"poolside/internal/domain"
)

func domainErrorResponse(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/reservations", nil)

	respondDomainError(c, err)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rec.Code, body
}

func TestDuplicateCodeMapsToStorageError(t *testing.T) {
	dup := domain.StorageError{
		Op:  "create",
		Err: domain.ConflictError{Resource: "reservation", Msg: "duplicate value", Err: errors.New("Error 1062: Duplicate entry")},
	}

	status, body := domainErrorResponse(t, dup)

	if status != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", status)
	}
	if body["code"] != "storage_error" {
		t.Fatalf("expected storage_error code, got %v", body["code"])
	}
	if body["error"] != "no se pudo guardar la reserva, intenta de nuevo" {
		t.Fatalf("duplicate code leaked internal detail: %v", body["error"])
	}
}

func TestConflictWithoutStorageStays409(t *testing.T) {
	status, body := domainErrorResponse(t, domain.ConflictError{Resource: "reservation", Msg: "ya fue decidida"})

	if status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
	if body["code"] != "conflict" {
		t.Fatalf("expected conflict code, got %v", body["code"])
	}
}

func TestValidationErrorCarriesFieldDetails(t *testing.T) {
	verr := domain.ValidationError{Fields: []domain.FieldError{
		{Field: "email", Msg: "Ingresa un correo electrónico válido"},
	}}

	status, body := domainErrorResponse(t, verr)

	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	details, ok := body["details"].([]any)
	if !ok || len(details) != 1 {
		t.Fatalf("expected one field detail, got %v", body["details"])
	}
}
