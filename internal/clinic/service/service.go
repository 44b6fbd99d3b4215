// Package service admits patients and translates caller selections into
// registry operations.
//
// The registry works on references; people choose doctors and appointments
// by their 1-based position in a listing. This package does that translation
// and reports failures as coded domain errors.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"clinic/internal/clinic/metrics"
	"clinic/internal/clinic/models"
	"clinic/internal/cpf"
	dErrors "clinic/pkg/domain-errors"
	"clinic/pkg/platform/sentinel"
	"clinic/pkg/requestcontext"
)

// Service is safe for concurrent use when its Registry is.
type Service struct {
	registry Registry
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type serviceConfig struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

func New(registry Registry, opts ...Option) (*Service, error) {
	if registry == nil {
		return nil, errors.New("registry is required")
	}
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{registry: registry, logger: cfg.logger, metrics: cfg.metrics}, nil
}

// ValidateCPF runs the checksum and records the outcome.
func (s *Service) ValidateCPF(_ context.Context, id string) bool {
	valid := cpf.Validate(id)
	if s.metrics != nil {
		s.metrics.RecordCPFValidation(valid)
	}
	return valid
}

// Admit logs a patient in. A known CPF returns the registered patient with
// created=false; an unknown one is registered from the request.
func (s *Service) Admit(ctx context.Context, req AdmitRequest) (*models.Patient, bool, error) {
	if !s.ValidateCPF(ctx, req.CPF) {
		s.logger.InfoContext(ctx, "cpf rejected", "request_id", requestcontext.RequestID(ctx))
		return nil, false, dErrors.New(dErrors.CodeValidation, "invalid cpf")
	}
	return s.admit(ctx, req)
}

// Register is Admit for callers that already ran ValidateCPF on req.CPF, so
// the validation is recorded once per login. The checksum is still enforced.
func (s *Service) Register(ctx context.Context, req AdmitRequest) (*models.Patient, bool, error) {
	if !cpf.Validate(req.CPF) {
		return nil, false, dErrors.New(dErrors.CodeValidation, "invalid cpf")
	}
	return s.admit(ctx, req)
}

func (s *Service) admit(ctx context.Context, req AdmitRequest) (*models.Patient, bool, error) {
	if existing, ok := s.registry.FindPatient(req.CPF); ok {
		return existing, false, nil
	}

	if req.Name == "" {
		return nil, false, dErrors.New(dErrors.CodeValidation, "name is required for new patients")
	}
	patient, err := models.NewPatient(req.CPF, req.Name, req.Age, req.Sex)
	if err != nil {
		return nil, false, dErrors.Wrap(err, dErrors.CodeValidation, dErrors.MessageOf(err))
	}
	s.registry.RegisterPatient(patient)

	s.logger.InfoContext(ctx, "patient admitted",
		"request_id", requestcontext.RequestID(ctx),
		"patient_id", patient.ID(),
	)
	return patient, true, nil
}

// Patient returns the registered patient for a CPF.
func (s *Service) Patient(ctx context.Context, id string) (*models.Patient, error) {
	p, err := s.lookupPatient(id)
	if err != nil {
		return nil, translate(err, "patient not found")
	}
	return p, nil
}

func (s *Service) Doctors(_ context.Context) []*models.Doctor {
	return s.registry.ListDoctors()
}

// Schedule books an appointment with the doctor at req.DoctorNumber.
func (s *Service) Schedule(ctx context.Context, req ScheduleRequest) (*models.Appointment, error) {
	patient, err := s.lookupPatient(req.CPF)
	if err != nil {
		return nil, translate(err, "patient not found")
	}
	doctor, err := pick(s.registry.ListDoctors(), req.DoctorNumber)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("doctor number %d is not in the roster", req.DoctorNumber))
	}

	a := s.registry.ScheduleAppointment(patient, doctor, req.Date, req.Time, req.Reason)
	if a == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "failed to schedule appointment")
	}
	s.logger.InfoContext(ctx, "appointment scheduled",
		"request_id", requestcontext.RequestID(ctx),
		"appointment_id", a.ID(),
	)
	return a, nil
}

// PatientAppointments lists the appointments of the patient with the given CPF.
func (s *Service) PatientAppointments(_ context.Context, id string) ([]*models.Appointment, error) {
	patient, err := s.lookupPatient(id)
	if err != nil {
		return nil, translate(err, "patient not found")
	}
	return s.registry.ListAppointmentsFor(patient), nil
}

func (s *Service) Appointments(_ context.Context) []*models.Appointment {
	return s.registry.ListAppointments()
}

// Cancel removes the patient's appointment at the 1-based position number of
// their own listing.
func (s *Service) Cancel(ctx context.Context, id string, number int) error {
	patient, err := s.lookupPatient(id)
	if err != nil {
		return translate(err, "patient not found")
	}
	a, err := pick(s.registry.ListAppointmentsFor(patient), number)
	if err != nil {
		return translate(err, fmt.Sprintf("appointment number %d does not exist", number))
	}
	return s.remove(ctx, patient, a)
}

// CancelAt removes the appointment at the 1-based position number of the
// clinic-wide listing, on behalf of its patient.
func (s *Service) CancelAt(ctx context.Context, number int) error {
	a, err := pick(s.registry.ListAppointments(), number)
	if err != nil {
		return translate(err, fmt.Sprintf("appointment number %d does not exist", number))
	}
	return s.remove(ctx, a.Patient(), a)
}

// CancelByID removes the appointment with the given handle.
func (s *Service) CancelByID(ctx context.Context, appointmentID uuid.UUID) error {
	a, ok := s.registry.FindAppointment(appointmentID)
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "appointment not found")
	}
	return s.remove(ctx, a.Patient(), a)
}

func (s *Service) remove(ctx context.Context, patient *models.Patient, a *models.Appointment) error {
	if !s.registry.RemoveAppointment(patient, a) {
		return dErrors.New(dErrors.CodeNotFound, "appointment not found")
	}
	s.logger.InfoContext(ctx, "appointment removed",
		"request_id", requestcontext.RequestID(ctx),
		"appointment_id", a.ID(),
	)
	return nil
}

func (s *Service) lookupPatient(id string) (*models.Patient, error) {
	p, ok := s.registry.FindPatient(id)
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return p, nil
}

// pick returns the entry at a 1-based position.
func pick[T any](items []T, number int) (T, error) {
	var zero T
	if number < 1 || number > len(items) {
		return zero, sentinel.ErrOutOfRange
	}
	return items[number-1], nil
}

func translate(err error, message string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, message)
	case errors.Is(err, sentinel.ErrOutOfRange):
		return dErrors.New(dErrors.CodeBadRequest, message)
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, message)
	}
}
