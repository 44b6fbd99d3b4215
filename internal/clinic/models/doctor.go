package models

import "fmt"

// Doctor is an immutable practitioner record.
type Doctor struct {
	Person
	specialty     string
	licenseNumber string
}

var _ Personal = (*Doctor)(nil)

func NewDoctor(name string, age int, sex Sex, specialty, licenseNumber string) (*Doctor, error) {
	person, err := NewPerson(name, age, sex)
	if err != nil {
		return nil, err
	}
	return &Doctor{Person: person, specialty: specialty, licenseNumber: licenseNumber}, nil
}

// MustDoctor creates a Doctor, panicking if invalid.
// Use only for seed data or in tests.
func MustDoctor(name string, age int, sex Sex, specialty, licenseNumber string) *Doctor {
	d, err := NewDoctor(name, age, sex, specialty, licenseNumber)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Doctor) Specialty() string     { return d.specialty }
func (d *Doctor) LicenseNumber() string { return d.licenseNumber }

func (d *Doctor) String() string {
	return fmt.Sprintf("%s (%s)", d.Name(), d.specialty)
}

// DefaultDoctors returns a fresh copy of the clinic's standing roster, in
// seed order.
func DefaultDoctors() []*Doctor {
	return []*Doctor{
		MustDoctor("Dr. Carlos", 45, SexMale, "Ortopedista", "1234"),
		MustDoctor("Dr. Mariano", 50, SexMale, "Pediatra", "5678"),
		MustDoctor("Dra. Letícia", 40, SexFemale, "Otorrinolaringologista", "9101"),
		MustDoctor("Dra. Patrícia", 35, SexFemale, "Neurologista", "1121"),
	}
}
