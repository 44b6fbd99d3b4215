// Package registry owns the clinic's patients, doctors and appointments.
//
// The Registry is the only mutator of the three collections. It keeps the
// master appointment list and every patient's history in agreement: an
// appointment is in both or in neither.
//
// Not-found conditions are reported by a false return or an empty slice,
// never by an error. Returned slices are copies; changing them does not
// change registry state.
package registry

import (
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"clinic/internal/clinic/metrics"
	"clinic/internal/clinic/models"
	dErrors "clinic/pkg/domain-errors"
)

// Registry is the in-memory owner of all clinic state for the process lifetime.
type Registry struct {
	mu           sync.RWMutex
	patients     []*models.Patient
	doctors      []*models.Doctor
	appointments []*models.Appointment

	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	newID   func() uuid.UUID
}

type config struct {
	doctors []*models.Doctor
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	newID   func() uuid.UUID
}

// Option configures a Registry.
type Option func(*config)

// WithDoctors replaces the default roster. The roster is fixed once the
// registry is built.
func WithDoctors(doctors []*models.Doctor) Option {
	return func(c *config) {
		c.doctors = doctors
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithClock sets the time source stamped on new appointments.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithIDGenerator sets the source of appointment handles. It is called with
// the registry lock held.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(c *config) {
		c.newID = newID
	}
}

// New builds a Registry seeded with models.DefaultDoctors unless WithDoctors
// says otherwise.
func New(opts ...Option) (*Registry, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.doctors == nil {
		cfg.doctors = models.DefaultDoctors()
	}
	if len(cfg.doctors) == 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "doctor roster cannot be empty")
	}
	if slices.Contains(cfg.doctors, nil) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "doctor roster cannot contain nil entries")
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}
	if cfg.newID == nil {
		cfg.newID = uuid.New
	}
	return &Registry{
		doctors: slices.Clone(cfg.doctors),
		logger:  cfg.logger,
		metrics: cfg.metrics,
		now:     cfg.now,
		newID:   cfg.newID,
	}, nil
}

// RegisterPatient appends p to the patient list. It does not deduplicate:
// callers look the id up with FindPatient first.
func (r *Registry) RegisterPatient(p *models.Patient) {
	if p == nil {
		return
	}
	r.mu.Lock()
	r.patients = append(r.patients, p)
	r.mu.Unlock()

	r.logger.Debug("patient registered", "patient_id", p.ID())
	if r.metrics != nil {
		r.metrics.IncrementPatientsRegistered()
	}
}

// FindPatient returns the first registered patient with the given id.
func (r *Registry) FindPatient(id string) (*models.Patient, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.patients {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// ListPatients returns the patients in registration order.
func (r *Registry) ListPatients() []*models.Patient {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*models.Patient{}, r.patients...)
}

// ListDoctors returns the roster in seed order. Callers number it from 1.
func (r *Registry) ListDoctors() []*models.Doctor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*models.Doctor{}, r.doctors...)
}

// ScheduleAppointment records a new appointment in the master list and in
// p's history. Overlapping slots for the same doctor are allowed. It returns
// nil only when p or d is nil.
func (r *Registry) ScheduleAppointment(p *models.Patient, d *models.Doctor, date, at, reason string) *models.Appointment {
	if p == nil || d == nil {
		r.logger.Warn("schedule ignored: missing patient or doctor")
		return nil
	}
	r.mu.Lock()
	a := models.NewAppointment(r.newID(), p, d, date, at, reason, r.now())
	r.appointments = append(r.appointments, a)
	p.AddToHistory(a)
	r.mu.Unlock()

	r.logger.Debug("appointment scheduled",
		"appointment_id", a.ID(),
		"patient_id", p.ID(),
		"doctor_license", d.LicenseNumber(),
		"date", date,
		"time", at,
	)
	if r.metrics != nil {
		r.metrics.RecordScheduled()
	}
	return a
}

// ListAppointments returns every appointment in scheduling order. The result
// is empty, not nil, when nothing is scheduled.
func (r *Registry) ListAppointments() []*models.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*models.Appointment{}, r.appointments...)
}

// ListAppointmentsFor returns p's appointments from the master list, in
// scheduling order.
func (r *Registry) ListAppointmentsFor(p *models.Patient) []*models.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*models.Appointment{}
	for _, a := range r.appointments {
		if a.Patient() == p {
			out = append(out, a)
		}
	}
	return out
}

// FindAppointment looks an appointment up by its transport handle.
func (r *Registry) FindAppointment(id uuid.UUID) (*models.Appointment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.appointments {
		if a.ID() == id {
			return a, true
		}
	}
	return nil, false
}

// RemoveAppointment removes a from the master list and from p's history in
// one step. It returns false, changing nothing, when a is not scheduled or
// does not belong to p.
func (r *Registry) RemoveAppointment(p *models.Patient, a *models.Appointment) bool {
	if p == nil || a == nil {
		return false
	}

	r.mu.Lock()
	i := slices.Index(r.appointments, a)
	if i < 0 || a.Patient() != p {
		r.mu.Unlock()
		r.logger.Debug("appointment not removed", "appointment_id", a.ID(), "patient_id", p.ID())
		return false
	}
	r.appointments = slices.Delete(r.appointments, i, i+1)
	p.RemoveFromHistory(a)
	r.mu.Unlock()

	r.logger.Debug("appointment removed", "appointment_id", a.ID(), "patient_id", p.ID())
	if r.metrics != nil {
		r.metrics.RecordRemoved()
	}
	return true
}
