package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"poolside/internal/domain/models"
)

func TestVoucherServiceGenerate(t *testing.T) {
	people := 4
	unitary := int64(4000)
	total := int64(16000)
	loader := func(_ context.Context, code string) (models.Reservation, error) {
		return models.Reservation{
			ID:             10,
			Name:           "Ana",
			LastName:       "Li",
			Identification: "123456",
			PhoneNumber:    "3001234567",
			Email:          "ana@x.com",
			VisitDate:      "2099-01-01",
			TimeSlot:       models.TimeSlotMorning,
			VisitType:      models.VisitCasual,
			People:         &people,
			UnitaryPrice:   &unitary,
			TotalPrice:     &total,
			Status:         models.StatusPending,
			Code:           code,
			CreatedAt:      time.Now(),
		}, nil
	}

	svc := VoucherService{Loader: loader}

	pdf, filename, err := svc.GenerateVoucher(context.Background(), "RES-A1B2C3")
	if err != nil {
		t.Fatalf("GenerateVoucher returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateVoucher returned empty data")
	}
	if filename != "voucher-res-a1b2c3.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
	if !strings.HasPrefix(string(pdf[:5]), "%PDF-") {
		t.Fatalf("output does not look like a PDF")
	}
}

func TestVoucherServiceEventShowsDashes(t *testing.T) {
	loader := func(_ context.Context, code string) (models.Reservation, error) {
		return models.Reservation{
			Name:      "Ana",
			LastName:  "Li",
			VisitDate: "2099-01-01",
			TimeSlot:  models.TimeSlotFullDay,
			VisitType: models.VisitEvent,
			Status:    models.StatusPending,
			Code:      code,
		}, nil
	}

	svc := VoucherService{Loader: loader}
	pdf, _, err := svc.GenerateVoucher(context.Background(), "RES-EVENT1")
	if err != nil {
		t.Fatalf("GenerateVoucher returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateVoucher returned empty data")
	}
}
