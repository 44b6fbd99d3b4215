package service

import (
	"github.com/google/uuid"

	"clinic/internal/clinic/models"
)

// Registry is the subset of the clinic registry the service drives.
type Registry interface {
	RegisterPatient(p *models.Patient)
	FindPatient(id string) (*models.Patient, bool)
	ListDoctors() []*models.Doctor
	ScheduleAppointment(p *models.Patient, d *models.Doctor, date, at, reason string) *models.Appointment
	ListAppointments() []*models.Appointment
	ListAppointmentsFor(p *models.Patient) []*models.Appointment
	FindAppointment(id uuid.UUID) (*models.Appointment, bool)
	RemoveAppointment(p *models.Patient, a *models.Appointment) bool
}

// AdmitRequest carries a login attempt. Name, Age and Sex are used only when
// the CPF is not registered yet.
type AdmitRequest struct {
	CPF  string
	Name string
	Age  int
	Sex  models.Sex
}

// ScheduleRequest addresses the doctor by its 1-based position in the roster.
type ScheduleRequest struct {
	CPF          string
	DoctorNumber int
	Date         string
	Time         string
	Reason       string
}
