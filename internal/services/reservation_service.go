package services

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"time"
	"unicode/utf8"

	"poolside/internal/config"
	"poolside/internal/domain"
	"poolside/internal/domain/models"
	"poolside/internal/utils"
)

// ReservationStore is the narrow gateway the service needs from the
// persistence layer; repositories.ReservationRepo implements it and
// tests substitute a double.
type ReservationStore interface {
	Create(ctx context.Context, rec models.Reservation) (models.Reservation, error)
	ListRecent(ctx context.Context, limit int) ([]models.Reservation, error)
	FindByCode(ctx context.Context, code string) (*models.Reservation, error)
	GetByID(ctx context.Context, id int64) (models.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status models.Status, reason string) error
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ReservationService validates and prices booking input, assigns codes
// and talks to the store. ValidateAndPrice itself is pure: no clock
// reads beyond the injected Now, no storage access.
type ReservationService struct {
	Store      ReservationStore
	CasualRate int64
	Now        func() time.Time
	Rng        *rand.Rand
	RequestID  string
}

func (s ReservationService) rate() int64 {
	if s.CasualRate > 0 {
		return s.CasualRate
	}
	return config.DefaultCasualRate
}

func (s ReservationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ValidateAndPrice checks every field rule and computes the derived
// monetary fields. All failing fields are reported together so the form
// can surface them at once. The returned record always starts pending
// with no rejection reason; caller-supplied status is never accepted.
func (s ReservationService) ValidateAndPrice(input models.ReservationInput) (models.Reservation, error) {
	fields := []domain.FieldError{}
	fail := func(field, msg string) {
		fields = append(fields, domain.FieldError{Field: field, Msg: msg})
	}

	name := utils.TrimOrEmpty(input.Name)
	lastName := utils.TrimOrEmpty(input.LastName)
	identification := utils.TrimOrEmpty(input.Identification)
	phone := utils.TrimOrEmpty(input.PhoneNumber)
	email := utils.TrimOrEmpty(input.Email)
	visitDate := utils.TrimOrEmpty(input.VisitDate)

	if utf8.RuneCountInString(name) < 2 {
		fail("name", "El nombre debe tener al menos 2 caracteres")
	} else if utf8.RuneCountInString(name) > 50 {
		fail("name", "El nombre debe tener máximo 50 caracteres")
	}
	if utf8.RuneCountInString(lastName) < 2 {
		fail("last_name", "El apellido debe tener al menos 2 caracteres")
	} else if utf8.RuneCountInString(lastName) > 50 {
		fail("last_name", "El apellido debe tener máximo 50 caracteres")
	}
	if n := utf8.RuneCountInString(identification); n < 5 || n > 20 {
		fail("identification", "Identificación inválida")
	}
	if n := utf8.RuneCountInString(phone); n < 7 || n > 15 {
		fail("phone_number", "Número de teléfono inválido")
	}
	if !emailPattern.MatchString(email) {
		fail("email", "Email inválido")
	}

	switch {
	case visitDate == "":
		fail("visit_date", "Selecciona una fecha")
	case !datePattern.MatchString(visitDate):
		fail("visit_date", "La fecha debe tener formato YYYY-MM-DD")
	default:
		day, err := utils.ParseDate(visitDate)
		if err != nil {
			fail("visit_date", "Fecha inválida")
		} else if day.Before(utils.Today(s.now())) {
			fail("visit_date", "La fecha debe ser hoy o posterior")
		}
	}

	if !models.ValidTimeSlot(input.TimeSlot) {
		fail("time_slot", "Selecciona un horario")
	}
	if !models.ValidVisitType(input.VisitType) {
		fail("visit_type", "Selecciona el tipo de visita")
	}

	rec := models.Reservation{
		Name:           name,
		LastName:       lastName,
		Identification: identification,
		PhoneNumber:    phone,
		Email:          email,
		VisitDate:      visitDate,
		TimeSlot:       input.TimeSlot,
		VisitType:      input.VisitType,
		Status:         models.StatusPending,
	}

	switch input.VisitType {
	case models.VisitCasual:
		switch {
		case input.People == nil:
			fail("people", "Mínimo 1 persona")
		case *input.People < 1:
			fail("people", "Mínimo 1 persona")
		case *input.People > 100:
			fail("people", "Máximo 100 personas")
		default:
			people := *input.People
			unitary := s.rate()
			total := unitary * int64(people)
			rec.People = &people
			rec.UnitaryPrice = &unitary
			rec.TotalPrice = &total
		}
	case models.VisitEvent:
		// Event pricing is negotiated out-of-band; headcount and prices
		// stay null no matter what the caller sent.
		rec.People = nil
		rec.UnitaryPrice = nil
		rec.TotalPrice = nil
	}

	if len(fields) > 0 {
		return models.Reservation{}, domain.ValidationError{Fields: fields}
	}
	return rec, nil
}

// Create runs the full booking path: validation and pricing, code
// assignment, then exactly one store write. Storage failures propagate
// unchanged; no retry happens here.
func (s ReservationService) Create(ctx context.Context, input models.ReservationInput) (models.Reservation, error) {
	rec, err := s.ValidateAndPrice(input)
	if err != nil {
		return models.Reservation{}, err
	}

	rec.Code = utils.GenerateCode(s.Rng)

	saved, err := s.Store.Create(ctx, rec)
	if err != nil {
		return models.Reservation{}, err
	}

	utils.LogEvent(s.RequestID, "reservations", "create",
		fmt.Sprintf("code=%s visit_type=%s visit_date=%s", saved.Code, saved.VisitType, saved.VisitDate))
	return saved, nil
}

// ListRecent returns the newest reservations, capped by limit.
func (s ReservationService) ListRecent(ctx context.Context, limit int) ([]models.Reservation, error) {
	return s.Store.ListRecent(ctx, limit)
}

// FindByCode looks up one reservation by its public code. A miss at the
// gateway becomes a NotFoundError here so the HTTP layer can map it.
func (s ReservationService) FindByCode(ctx context.Context, code string) (models.Reservation, error) {
	rec, err := s.Store.FindByCode(ctx, utils.TrimOrEmpty(code))
	if err != nil {
		return models.Reservation{}, err
	}
	if rec == nil {
		return models.Reservation{}, domain.NotFoundError{Resource: "reservation"}
	}
	return *rec, nil
}

// Approve marks a pending reservation as approved.
func (s ReservationService) Approve(ctx context.Context, id int64) error {
	return s.decide(ctx, id, models.StatusApproved, "")
}

// Reject marks a pending reservation as rejected; the reason is required
// because rejection_reason must be set exactly when status is rejected.
func (s ReservationService) Reject(ctx context.Context, id int64, reason string) error {
	reason = utils.NormalizeSpace(reason)
	if reason == "" {
		return domain.ValidationError{Fields: []domain.FieldError{
			{Field: "rejection_reason", Msg: "El motivo de rechazo es requerido"},
		}}
	}
	return s.decide(ctx, id, models.StatusRejected, reason)
}

// Cancel marks a pending reservation as cancelled.
func (s ReservationService) Cancel(ctx context.Context, id int64) error {
	return s.decide(ctx, id, models.StatusCancelled, "")
}

func (s ReservationService) decide(ctx context.Context, id int64, status models.Status, reason string) error {
	rec, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.Status != models.StatusPending {
		return domain.ConflictError{Resource: "reservation", Msg: fmt.Sprintf("already %s", rec.Status)}
	}
	if err := s.Store.UpdateStatus(ctx, id, status, reason); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "reservations", "decide",
		fmt.Sprintf("id=%d status=%s", id, status))
	return nil
}
