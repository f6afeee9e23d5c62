package booking

import (
	"context"
	"errors"

	"poolside/internal/domain"
	"poolside/internal/domain/models"
)

// Step identifies where the two-step form currently is.
type Step int

const (
	StepIdentity     Step = iota + 1 // name, last name, identification, phone, email
	StepVisitDetails                 // date, time slot, visit type, people
	StepDone                         // reservation persisted, form spent
)

// ErrFormDone is returned when a spent form is driven again; a fresh
// instance is required for a new booking attempt.
var ErrFormDone = errors.New("booking form already submitted")

// ReservationFlow is what the form needs from the reservation service:
// step gating reuses the same validation the final submit runs, so the
// field rules live in exactly one place.
type ReservationFlow interface {
	ValidateAndPrice(input models.ReservationInput) (models.Reservation, error)
	Create(ctx context.Context, input models.ReservationInput) (models.Reservation, error)
}

var identityFields = map[string]bool{
	"name":           true,
	"last_name":      true,
	"identification": true,
	"phone_number":   true,
	"email":          true,
}

// Form drives the interactive two-step collection flow. One form handles
// one booking attempt sequentially; it is not safe for concurrent use.
type Form struct {
	flow         ReservationFlow
	step         Step
	input        models.ReservationInput
	fieldErrs    []domain.FieldError
	err          error
	result       *models.Reservation
	peopleLocked bool
}

// NewForm starts a fresh attempt on the identity step with one person
// preselected, mirroring the site's form defaults.
func NewForm(flow ReservationFlow) *Form {
	one := 1
	return &Form{
		flow:  flow,
		step:  StepIdentity,
		input: models.ReservationInput{People: &one},
	}
}

func (f *Form) Step() Step                       { return f.step }
func (f *Form) Values() models.ReservationInput  { return f.input }
func (f *Form) FieldErrors() []domain.FieldError { return f.fieldErrs }
func (f *Form) Err() error                       { return f.err }
func (f *Form) Result() *models.Reservation      { return f.result }
func (f *Form) PeopleLocked() bool               { return f.peopleLocked }

func (f *Form) SetName(v string)              { f.input.Name = v }
func (f *Form) SetLastName(v string)          { f.input.LastName = v }
func (f *Form) SetIdentification(v string)    { f.input.Identification = v }
func (f *Form) SetPhoneNumber(v string)       { f.input.PhoneNumber = v }
func (f *Form) SetEmail(v string)             { f.input.Email = v }
func (f *Form) SetVisitDate(v string)         { f.input.VisitDate = v }
func (f *Form) SetTimeSlot(v models.TimeSlot) { f.input.TimeSlot = v }

// SetVisitType records the selection. Choosing an event pins people to
// the minimum and locks the field, since headcount is irrelevant for
// event pricing; switching back to casual unlocks it.
func (f *Form) SetVisitType(v models.VisitType) {
	f.input.VisitType = v
	if v == models.VisitEvent {
		one := 1
		f.input.People = &one
		f.peopleLocked = true
	} else {
		f.peopleLocked = false
	}
}

// SetPeople is ignored while an event selection has the field locked.
func (f *Form) SetPeople(n int) {
	if f.peopleLocked {
		return
	}
	f.input.People = &n
}

// Next gates the identity step: it advances only when every step-1 field
// passes, otherwise the step is unchanged and per-field errors are
// surfaced. Calling it anywhere else is a no-op.
func (f *Form) Next() bool {
	if f.step != StepIdentity {
		return f.step == StepVisitDetails
	}

	f.fieldErrs = f.stepErrors(identityFields)
	if len(f.fieldErrs) > 0 {
		return false
	}
	f.step = StepVisitDetails
	return true
}

// Back returns to the identity step without losing any entered data.
func (f *Form) Back() {
	if f.step == StepVisitDetails {
		f.step = StepIdentity
		f.fieldErrs = nil
	}
}

// Submit runs full validation, code assignment and the store create. Any
// failure keeps the form on the visit-details step with all data intact;
// success clears the fields and spends the form.
func (f *Form) Submit(ctx context.Context) (models.Reservation, error) {
	if f.step == StepDone {
		return models.Reservation{}, ErrFormDone
	}
	if f.step != StepVisitDetails {
		return models.Reservation{}, domain.ValidationError{Fields: []domain.FieldError{
			{Field: "step", Msg: "Completa tus datos personales primero"},
		}}
	}

	saved, err := f.flow.Create(ctx, f.input)
	if err != nil {
		f.err = err
		var verr domain.ValidationError
		if errors.As(err, &verr) {
			f.fieldErrs = verr.Fields
		} else {
			f.fieldErrs = nil
		}
		return models.Reservation{}, err
	}

	f.step = StepDone
	f.err = nil
	f.fieldErrs = nil
	f.input = models.ReservationInput{}
	f.result = &saved
	return saved, nil
}

// stepErrors validates the whole input and keeps only the errors citing
// the given fields, so partial steps share the engine's rules.
func (f *Form) stepErrors(fields map[string]bool) []domain.FieldError {
	_, err := f.flow.ValidateAndPrice(f.input)
	if err == nil {
		return nil
	}
	var verr domain.ValidationError
	if !errors.As(err, &verr) {
		return []domain.FieldError{{Field: "form", Msg: err.Error()}}
	}
	out := []domain.FieldError{}
	for _, fe := range verr.Fields {
		if fields[fe.Field] {
			out = append(out, fe)
		}
	}
	return out
}
