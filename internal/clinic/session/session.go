// Package session runs the interactive console front end of the clinic. It
// speaks Portuguese to the operator and drives the same service as the HTTP
// API.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"clinic/internal/clinic/models"
	"clinic/internal/clinic/service"
	"clinic/internal/cpf"
	dErrors "clinic/pkg/domain-errors"
)

// Service is the subset of the clinic service the console needs.
type Service interface {
	ValidateCPF(ctx context.Context, id string) bool
	Register(ctx context.Context, req service.AdmitRequest) (*models.Patient, bool, error)
	Patient(ctx context.Context, id string) (*models.Patient, error)
	Doctors(ctx context.Context) []*models.Doctor
	Schedule(ctx context.Context, req service.ScheduleRequest) (*models.Appointment, error)
	PatientAppointments(ctx context.Context, id string) ([]*models.Appointment, error)
	Appointments(ctx context.Context) []*models.Appointment
	Cancel(ctx context.Context, id string, number int) error
	CancelAt(ctx context.Context, number int) error
}

const separator = "--------------------------------------------------"

const (
	msgInvalidOption = "Opção inválida. Tente novamente."
	msgInvalidNumber = "Número inválido. Tente novamente."
	msgNotANumber    = "Entrada inválida. Digite um número."
	msgInvalidCPF    = "O CPF digitado não está correto. Por gentileza, refaça o login e insira um CPF válido"
	msgExpectedCheck = "Para os nove primeiros dígitos informados, os dígitos verificadores seriam %s."
	msgScheduled     = "Consulta agendada com sucesso!"
	msgRemoved       = "Consulta removida com sucesso!"
	msgNotFound      = "Consulta não encontrada."
	msgNoneForUser   = "Nenhuma consulta encontrada para este paciente."
	msgNoneAtAll     = "Nenhuma consulta cadastrada."
)

// Session reads operator input line by line and writes prompts and listings.
type Session struct {
	clinic Service
	in     *bufio.Reader
	out    io.Writer
}

func New(clinic Service, in io.Reader, out io.Writer) *Session {
	return &Session{clinic: clinic, in: bufio.NewReader(in), out: out}
}

// Run loops over logins until the input is exhausted or ctx is cancelled.
// End of input is a normal exit.
func (s *Session) Run(ctx context.Context) error {
	err := s.loginLoop(ctx)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Session) loginLoop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		login, err := s.prompt("Login: [Medico/Paciente] ")
		if err != nil {
			return err
		}
		switch strings.ToUpper(login) {
		case "PACIENTE":
			err = s.patientLogin(ctx)
		case "MEDICO", "MÉDICO":
			err = s.doctorMenu(ctx)
		default:
			s.println(msgInvalidOption)
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) patientLogin(ctx context.Context) error {
	id, err := s.prompt("Insira seu CPF: ")
	if err != nil {
		return err
	}
	if !s.clinic.ValidateCPF(ctx, id) {
		s.rejectCPF(id)
		return nil
	}

	patient, err := s.clinic.Patient(ctx, id)
	if dErrors.HasCode(err, dErrors.CodeNotFound) {
		patient, err = s.register(ctx, id)
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		s.println("Não foi possível realizar o cadastro: " + dErrors.MessageOf(err))
		return nil
	}
	return s.patientMenu(ctx, patient)
}

// rejectCPF explains a failed checksum, naming the expected check digits
// when the input has the right shape.
func (s *Session) rejectCPF(id string) {
	s.println(msgInvalidCPF)
	if len(id) != cpf.Length {
		return
	}
	if digits, err := cpf.CheckDigits(id[:cpf.BaseLength]); err == nil {
		s.println(fmt.Sprintf(msgExpectedCheck, digits))
	}
}

func (s *Session) register(ctx context.Context, id string) (*models.Patient, error) {
	name, err := s.prompt("Insira seu nome: ")
	if err != nil {
		return nil, err
	}
	age, err := s.readInt("Insira sua idade: ", func(n int) bool { return n >= 0 })
	if err != nil {
		return nil, err
	}
	sex, err := s.prompt("Insira seu sexo: ")
	if err != nil {
		return nil, err
	}
	patient, _, err := s.clinic.Register(ctx, service.AdmitRequest{
		CPF:  id,
		Name: name,
		Age:  age,
		Sex:  models.Sex(strings.ToUpper(sex)),
	})
	return patient, err
}

func (s *Session) patientMenu(ctx context.Context, patient *models.Patient) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.println(separator)
		choice, err := s.prompt("1 - Agendar consulta\n2 - Ver consultas\n3 - Remover consulta\n4 - Sair\n")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = s.schedule(ctx, patient)
		case "2":
			_, err = s.listPatient(ctx, patient)
		case "3":
			err = s.cancelForPatient(ctx, patient)
		case "4":
			return nil
		default:
			s.println(msgInvalidOption)
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) schedule(ctx context.Context, patient *models.Patient) error {
	doctors := s.clinic.Doctors(ctx)
	for i, d := range doctors {
		s.println(fmt.Sprintf("%d) %s", i+1, d))
	}
	number, err := s.readInt("Escolha o médico pelo número: ", inRange(len(doctors)))
	if err != nil {
		return err
	}
	date, err := s.prompt("Data da consulta (dd/mm/yyyy): ")
	if err != nil {
		return err
	}
	at, err := s.prompt("Horário da consulta (hh:mm): ")
	if err != nil {
		return err
	}
	reason, err := s.prompt("Motivo da consulta: ")
	if err != nil {
		return err
	}

	if _, err := s.clinic.Schedule(ctx, service.ScheduleRequest{
		CPF:          patient.ID(),
		DoctorNumber: number,
		Date:         date,
		Time:         at,
		Reason:       reason,
	}); err != nil {
		s.println("Não foi possível agendar a consulta: " + dErrors.MessageOf(err))
		return nil
	}
	s.println(msgScheduled)
	return nil
}

// listPatient prints the patient's appointments and returns how many there are.
func (s *Session) listPatient(ctx context.Context, patient *models.Patient) (int, error) {
	list, err := s.clinic.PatientAppointments(ctx, patient.ID())
	if err != nil {
		return 0, err
	}
	if len(list) == 0 {
		s.println(msgNoneForUser)
		return 0, nil
	}
	s.printAppointments(list)
	return len(list), nil
}

// cancelForPatient numbers entries within the patient's own listing.
func (s *Session) cancelForPatient(ctx context.Context, patient *models.Patient) error {
	count, err := s.listPatient(ctx, patient)
	if err != nil || count == 0 {
		return err
	}
	number, err := s.readInt("Escolha a consulta pelo número: ", inRange(count))
	if err != nil {
		return err
	}
	s.reportRemoval(s.clinic.Cancel(ctx, patient.ID(), number))
	return nil
}

func (s *Session) doctorMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.println(separator)
		choice, err := s.prompt("1 - Ver consultas\n2 - Remover consulta\n3 - Sair\n")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			s.listAll(ctx)
		case "2":
			err = s.cancelForDoctor(ctx)
		case "3":
			return nil
		default:
			s.println(msgInvalidOption)
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) listAll(ctx context.Context) int {
	list := s.clinic.Appointments(ctx)
	if len(list) == 0 {
		s.println(msgNoneAtAll)
		return 0
	}
	s.printAppointments(list)
	return len(list)
}

func (s *Session) cancelForDoctor(ctx context.Context) error {
	count := s.listAll(ctx)
	if count == 0 {
		return nil
	}
	number, err := s.readInt("Escolha a consulta pelo número: ", inRange(count))
	if err != nil {
		return err
	}
	s.reportRemoval(s.clinic.CancelAt(ctx, number))
	return nil
}

func (s *Session) reportRemoval(err error) {
	if err != nil {
		s.println(msgNotFound)
		return
	}
	s.println(msgRemoved)
}

func (s *Session) printAppointments(list []*models.Appointment) {
	for i, a := range list {
		s.println(fmt.Sprintf("%d) %s", i+1, a))
	}
}

// readInt reprompts until the answer parses and satisfies ok.
func (s *Session) readInt(label string, ok func(int) bool) (int, error) {
	for {
		raw, err := s.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.println(msgNotANumber)
			continue
		}
		if !ok(n) {
			s.println(msgInvalidNumber)
			continue
		}
		return n, nil
	}
}

func inRange(count int) func(int) bool {
	return func(n int) bool { return n >= 1 && n <= count }
}

// prompt writes label and returns the next trimmed input line. A final line
// without a newline is still returned; io.EOF only follows it.
func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}
