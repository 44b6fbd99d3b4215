package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "clinic/pkg/domain-errors"
)

func TestNewPerson_RejectsNegativeAge(t *testing.T) {
	_, err := NewPerson("Ana", -1, SexFemale)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	_, err = NewPatient("11144477735", "Ana", -3, SexFemale)
	require.Error(t, err)

	_, err = NewDoctor("Dr. X", -1, SexMale, "Clínico", "0000")
	require.Error(t, err)
}

func TestDefaultDoctors(t *testing.T) {
	doctors := DefaultDoctors()
	require.Len(t, doctors, 4)

	assert.Equal(t, "Dr. Carlos", doctors[0].Name())
	assert.Equal(t, "Ortopedista", doctors[0].Specialty())
	assert.Equal(t, "1234", doctors[0].LicenseNumber())
	assert.Equal(t, 45, doctors[0].Age())
	assert.Equal(t, SexMale, doctors[0].Sex())

	assert.Equal(t, "Dr. Mariano (Pediatra)", doctors[1].String())
	assert.Equal(t, "Dra. Letícia (Otorrinolaringologista)", doctors[2].String())
	assert.Equal(t, "Dra. Patrícia (Neurologista)", doctors[3].String())

	again := DefaultDoctors()
	assert.NotSame(t, doctors[0], again[0], "each call returns fresh records")
}

func TestPatientHistory(t *testing.T) {
	patient, err := NewPatient("11144477735", "Ana", 30, SexFemale)
	require.NoError(t, err)
	doctor := DefaultDoctors()[0]
	now := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)

	first := NewAppointment(uuid.New(), patient, doctor, "01/01/2030", "09:00", "checkup", now)
	second := NewAppointment(uuid.New(), patient, doctor, "02/01/2030", "10:00", "retorno", now)

	t.Run("keeps scheduling order", func(t *testing.T) {
		patient.AddToHistory(first)
		patient.AddToHistory(second)
		assert.Equal(t, []*Appointment{first, second}, patient.History())
		assert.True(t, patient.HasInHistory(first))
	})

	t.Run("returned history is a copy", func(t *testing.T) {
		h := patient.History()
		h[0] = nil
		assert.Same(t, first, patient.History()[0])
	})

	t.Run("removes by identity", func(t *testing.T) {
		assert.True(t, patient.RemoveFromHistory(first))
		assert.False(t, patient.RemoveFromHistory(first))
		assert.Equal(t, []*Appointment{second}, patient.History())
	})
}

func TestAppointmentString(t *testing.T) {
	patient, err := NewPatient("11144477735", "Ana", 30, SexFemale)
	require.NoError(t, err)
	a := NewAppointment(uuid.New(), patient, DefaultDoctors()[1], "01/01/2030", "09:00", "checkup", time.Now())

	assert.Equal(t, "01/01/2030 09:00 - checkup com Dr. Mariano (Pediatra)", a.String())
	assert.Same(t, patient, a.Patient())
	assert.Equal(t, "checkup", a.Reason())
}
