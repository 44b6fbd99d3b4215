package handler

import (
	"time"

	"github.com/google/uuid"

	"clinic/internal/clinic/models"
	"clinic/internal/cpf"
)

type cpfResponse struct {
	CPF       string `json:"cpf"`
	Formatted string `json:"formatted"`
	Valid     bool   `json:"valid"`
}

func toCPFResponse(id string, valid bool) cpfResponse {
	return cpfResponse{CPF: id, Formatted: cpf.Format(id), Valid: valid}
}

type doctorResponse struct {
	Number        int    `json:"number,omitempty"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Sex           string `json:"sex"`
	Specialty     string `json:"specialty"`
	LicenseNumber string `json:"license_number"`
}

type patientResponse struct {
	CPF          string `json:"cpf"`
	Formatted    string `json:"formatted"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Sex          string `json:"sex"`
	Appointments int    `json:"appointments"`
}

type appointmentResponse struct {
	ID          uuid.UUID      `json:"id"`
	Number      int            `json:"number,omitempty"`
	PatientCPF  string         `json:"patient_cpf"`
	PatientName string         `json:"patient_name"`
	Doctor      doctorResponse `json:"doctor"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	Reason      string         `json:"reason"`
	Summary     string         `json:"summary"`
	CreatedAt   time.Time      `json:"created_at"`
}

func toDoctorResponse(number int, d *models.Doctor) doctorResponse {
	return doctorResponse{
		Number:        number,
		Name:          d.Name(),
		Age:           d.Age(),
		Sex:           string(d.Sex()),
		Specialty:     d.Specialty(),
		LicenseNumber: d.LicenseNumber(),
	}
}

func toPatientResponse(p *models.Patient) patientResponse {
	return patientResponse{
		CPF:          p.ID(),
		Formatted:    cpf.Format(p.ID()),
		Name:         p.Name(),
		Age:          p.Age(),
		Sex:          string(p.Sex()),
		Appointments: len(p.History()),
	}
}

// toAppointmentResponse renders a. A zero number is omitted; listings number
// entries from 1.
func toAppointmentResponse(number int, a *models.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:          a.ID(),
		Number:      number,
		PatientCPF:  a.Patient().ID(),
		PatientName: a.Patient().Name(),
		Doctor:      toDoctorResponse(0, a.Doctor()),
		Date:        a.Date(),
		Time:        a.Time(),
		Reason:      a.Reason(),
		Summary:     a.String(),
		CreatedAt:   a.CreatedAt(),
	}
}

func toAppointmentResponses(list []*models.Appointment) []appointmentResponse {
	resp := make([]appointmentResponse, 0, len(list))
	for i, a := range list {
		resp = append(resp, toAppointmentResponse(i+1, a))
	}
	return resp
}
