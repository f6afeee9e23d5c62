package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"poolside/internal/domain"
	"poolside/internal/domain/models"
	"poolside/internal/utils"
)

// VoucherService renders the printable booking voucher guests present at
// the venue entrance.
type VoucherService struct {
	Store     ReservationStore
	RequestID string
	Loader    func(ctx context.Context, code string) (models.Reservation, error)
}

// GenerateVoucher returns the PDF bytes and a download filename for the
// reservation identified by its public code.
func (s VoucherService) GenerateVoucher(ctx context.Context, code string) ([]byte, string, error) {
	rec, err := s.load(ctx, code)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "vouchers", "generate", fmt.Sprintf("code=%s", rec.Code))
	return buildVoucherPDF(rec)
}

func (s VoucherService) load(ctx context.Context, code string) (models.Reservation, error) {
	if s.Loader != nil {
		return s.Loader(ctx, code)
	}
	rec, err := s.Store.FindByCode(ctx, utils.TrimOrEmpty(code))
	if err != nil {
		return models.Reservation{}, err
	}
	if rec == nil {
		return models.Reservation{}, domain.NotFoundError{Resource: "reservation"}
	}
	return *rec, nil
}

func buildVoucherPDF(rec models.Reservation) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Comprobante de Reserva", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "COMPROBANTE DE RESERVA")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Codigo         : %s", rec.Code),
		fmt.Sprintf("Nombre         : %s %s", rec.Name, rec.LastName),
		fmt.Sprintf("Identificacion : %s", rec.Identification),
		fmt.Sprintf("Telefono       : %s", rec.PhoneNumber),
		fmt.Sprintf("Email          : %s", rec.Email),
		fmt.Sprintf("Fecha visita   : %s", rec.VisitDate),
		fmt.Sprintf("Horario        : %s (%s)", rec.TimeSlot, models.TimeSlotRange[rec.TimeSlot]),
		fmt.Sprintf("Tipo de visita : %s", rec.VisitType),
		fmt.Sprintf("Personas       : %s", peopleLine(rec)),
		fmt.Sprintf("Precio unitario: %s", priceLine(rec.UnitaryPrice)),
		fmt.Sprintf("Precio total   : %s", priceLine(rec.TotalPrice)),
		fmt.Sprintf("Estado         : %s", rec.Status),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Presenta este comprobante junto con tu identificacion al ingresar. Las reservas de evento se cotizan por separado.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("voucher-%s.pdf", strings.ToLower(rec.Code))
	return buf.Bytes(), filename, nil
}

func peopleLine(rec models.Reservation) string {
	if rec.People == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *rec.People)
}

func priceLine(amount *int64) string {
	if amount == nil {
		return "-"
	}
	return utils.FormatCOP(*amount)
}
