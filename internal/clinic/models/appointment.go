package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Appointment links a patient to a doctor at a date and time.
//
// Date (dd/mm/yyyy) and Time (hh:mm) are kept exactly as entered. ID is a
// handle for transports; the registry identifies appointments by pointer.
type Appointment struct {
	id        uuid.UUID
	patient   *Patient
	doctor    *Doctor
	date      string
	time      string
	reason    string
	createdAt time.Time
}

// NewAppointment is called by the registry when scheduling.
func NewAppointment(id uuid.UUID, patient *Patient, doctor *Doctor, date, at, reason string, now time.Time) *Appointment {
	return &Appointment{
		id:        id,
		patient:   patient,
		doctor:    doctor,
		date:      date,
		time:      at,
		reason:    reason,
		createdAt: now,
	}
}

func (a *Appointment) ID() uuid.UUID        { return a.id }
func (a *Appointment) Patient() *Patient    { return a.patient }
func (a *Appointment) Doctor() *Doctor      { return a.doctor }
func (a *Appointment) Date() string         { return a.date }
func (a *Appointment) Time() string         { return a.time }
func (a *Appointment) Reason() string       { return a.reason }
func (a *Appointment) CreatedAt() time.Time { return a.createdAt }

func (a *Appointment) String() string {
	return fmt.Sprintf("%s %s - %s com %s (%s)", a.date, a.time, a.reason, a.doctor.Name(), a.doctor.Specialty())
}
