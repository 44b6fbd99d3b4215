package session

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"clinic/internal/clinic/metrics"
	"clinic/internal/clinic/registry"
	"clinic/internal/clinic/service"
)

type SessionSuite struct {
	suite.Suite
	registry *registry.Registry
	service  *service.Service
	metrics  *metrics.Metrics
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	reg, err := registry.New()
	s.Require().NoError(err)
	s.metrics = metrics.New(prometheus.NewRegistry())
	svc, err := service.New(reg, service.WithMetrics(s.metrics))
	s.Require().NoError(err)
	s.registry = reg
	s.service = svc
}

// run feeds lines to a fresh session and returns everything it printed.
func (s *SessionSuite) run(lines ...string) string {
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	s.Require().NoError(New(s.service, in, &out).Run(context.Background()))
	return out.String()
}

func (s *SessionSuite) TestEmptyInputEndsCleanly() {
	out := s.run()
	s.Contains(out, "Login: [Medico/Paciente] ")
}

func (s *SessionSuite) TestInvalidLogin() {
	out := s.run("enfermeiro")
	s.Contains(out, msgInvalidOption)
}

func (s *SessionSuite) TestInvalidCPFReturnsToLogin() {
	out := s.run("paciente", "11144477736")
	s.Contains(out, msgInvalidCPF)
	s.Contains(out, fmt.Sprintf(msgExpectedCheck, "35"))
	s.Empty(s.registry.ListPatients())
}

func (s *SessionSuite) TestMalformedCPFHasNoExpectedDigits() {
	for _, id := range []string{"123", "11144477a35", "111.444.777-35"} {
		out := s.run("paciente", id)
		s.Contains(out, msgInvalidCPF, id)
		s.NotContains(out, "dígitos verificadores seriam", id)
	}
}

func (s *SessionSuite) TestNewPatientLoginValidatesOnce() {
	s.run("paciente", "11144477735", "Ana", "30", "F", "4")
	s.Len(s.registry.ListPatients(), 1)
	s.InDelta(1, testutil.ToFloat64(s.metrics.CPFValidations.WithLabelValues("valid")), 0)
}

func (s *SessionSuite) TestPatientSchedulesListsAndRemoves() {
	out := s.run(
		"Paciente", "11144477735", "Ana", "trinta", "30", "f",
		"1", "9", "x", "1", "01/01/2030", "09:00", "checkup",
		"2",
		"3", "1",
		"2",
		"4",
	)

	s.Contains(out, "1) Dr. Carlos (Ortopedista)")
	s.Contains(out, "4) Dra. Patrícia (Neurologista)")
	s.Contains(out, msgNotANumber)
	s.Contains(out, msgInvalidNumber)
	s.Contains(out, msgScheduled)
	s.Contains(out, "1) 01/01/2030 09:00 - checkup com Dr. Carlos (Ortopedista)")
	s.Contains(out, msgRemoved)
	s.Contains(out, msgNoneForUser)

	patients := s.registry.ListPatients()
	s.Require().Len(patients, 1)
	s.Equal("Ana", patients[0].Name())
	s.Equal(30, patients[0].Age())
	s.Equal("F", string(patients[0].Sex()))
	s.Empty(s.registry.ListAppointments())
}

func (s *SessionSuite) TestReturningPatientIsNotRegisteredTwice() {
	s.run("paciente", "11144477735", "Ana", "30", "F", "4",
		"paciente", "11144477735", "4")
	s.Len(s.registry.ListPatients(), 1)
}

func (s *SessionSuite) TestPatientRemovalUsesOwnListing() {
	s.run("paciente", "52998224725", "Bia", "40", "F", "1", "2", "", "", "primeira", "4")
	s.run("paciente", "11144477735", "Ana", "30", "F", "1", "1", "", "", "da Ana", "3", "1", "4")

	remaining := s.registry.ListAppointments()
	s.Require().Len(remaining, 1)
	s.Equal("Bia", remaining[0].Patient().Name())
}

func (s *SessionSuite) TestRemovingWithNothingScheduled() {
	out := s.run("paciente", "11144477735", "Ana", "30", "F", "3", "4")
	s.Contains(out, msgNoneForUser)
	s.NotContains(out, "Escolha a consulta pelo número: ")
}

func (s *SessionSuite) TestDoctorListsAndRemoves() {
	s.run("paciente", "11144477735", "Ana", "30", "F",
		"1", "3", "05/05/2030", "14:00", "dor de ouvido", "4")

	out := s.run("medico", "1", "2", "0", "1", "1", "3")
	s.Contains(out, "1) 05/05/2030 14:00 - dor de ouvido com Dra. Letícia (Otorrinolaringologista)")
	s.Contains(out, msgInvalidNumber)
	s.Contains(out, msgRemoved)
	s.Contains(out, msgNoneAtAll)
	s.Empty(s.registry.ListAppointments())
}

func (s *SessionSuite) TestDoctorMenuInvalidOption() {
	out := s.run("medico", "7", "3")
	s.Contains(out, msgInvalidOption)
}

func (s *SessionSuite) TestCancelledContextStops() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := New(s.service, strings.NewReader("medico\n"), &bytes.Buffer{}).Run(ctx)
	s.ErrorIs(err, context.Canceled)
}

func (s *SessionSuite) TestFinalLineWithoutNewline() {
	var out bytes.Buffer
	err := New(s.service, strings.NewReader("medico\n3"), &out).Run(context.Background())
	s.Require().NoError(err)
	s.Contains(out.String(), "1 - Ver consultas")
}
