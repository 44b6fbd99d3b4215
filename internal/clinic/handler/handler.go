package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"clinic/internal/clinic/models"
	"clinic/internal/clinic/service"
	dErrors "clinic/pkg/domain-errors"
	"clinic/pkg/platform/httputil"
	"clinic/pkg/requestcontext"
)

// Service defines the clinic operations exposed over HTTP.
type Service interface {
	ValidateCPF(ctx context.Context, id string) bool
	Admit(ctx context.Context, req service.AdmitRequest) (*models.Patient, bool, error)
	Patient(ctx context.Context, id string) (*models.Patient, error)
	Doctors(ctx context.Context) []*models.Doctor
	Schedule(ctx context.Context, req service.ScheduleRequest) (*models.Appointment, error)
	PatientAppointments(ctx context.Context, id string) ([]*models.Appointment, error)
	Appointments(ctx context.Context) []*models.Appointment
	Cancel(ctx context.Context, id string, number int) error
	CancelByID(ctx context.Context, appointmentID uuid.UUID) error
}

// Handler serves the clinic endpoints.
type Handler struct {
	clinic   Service
	logger   *slog.Logger
	validate *validator.Validate
}

func New(clinic Service, logger *slog.Logger) *Handler {
	return &Handler{
		clinic:   clinic,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Register registers the clinic routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/doctors", h.handleListDoctors)
	r.Get("/cpf/{cpf}", h.handleValidateCPF)

	r.Post("/patients", h.handleAdmit)
	r.Get("/patients/{cpf}", h.handleGetPatient)
	r.Get("/patients/{cpf}/appointments", h.handleListPatientAppointments)
	r.Post("/patients/{cpf}/appointments", h.handleSchedule)
	r.Delete("/patients/{cpf}/appointments/{number}", h.handleCancel)

	r.Get("/appointments", h.handleListAppointments)
	r.Delete("/appointments/{id}", h.handleCancelByID)
}

func (h *Handler) handleListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors := h.clinic.Doctors(r.Context())
	resp := make([]doctorResponse, 0, len(doctors))
	for i, d := range doctors {
		resp = append(resp, toDoctorResponse(i+1, d))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleValidateCPF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "cpf")
	httputil.WriteJSON(w, http.StatusOK, toCPFResponse(id, h.clinic.ValidateCPF(r.Context(), id)))
}

func (h *Handler) handleAdmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req admitRequest
	if !h.decode(w, r, &req) {
		return
	}

	patient, created, err := h.clinic.Admit(ctx, service.AdmitRequest{
		CPF:  req.CPF,
		Name: req.Name,
		Age:  req.Age,
		Sex:  models.Sex(req.Sex),
	})
	if err != nil {
		h.writeServiceError(ctx, w, "failed to admit patient", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httputil.WriteJSON(w, status, toPatientResponse(patient))
}

func (h *Handler) handleGetPatient(w http.ResponseWriter, r *http.Request) {
	patient, err := h.clinic.Patient(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		h.writeServiceError(r.Context(), w, "failed to load patient", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPatientResponse(patient))
}

func (h *Handler) handleListPatientAppointments(w http.ResponseWriter, r *http.Request) {
	list, err := h.clinic.PatientAppointments(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		h.writeServiceError(r.Context(), w, "failed to list appointments", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toAppointmentResponses(list))
}

func (h *Handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req scheduleRequest
	if !h.decode(w, r, &req) {
		return
	}

	a, err := h.clinic.Schedule(ctx, service.ScheduleRequest{
		CPF:          chi.URLParam(r, "cpf"),
		DoctorNumber: req.DoctorNumber,
		Date:         req.Date,
		Time:         req.Time,
		Reason:       req.Reason,
	})
	if err != nil {
		h.writeServiceError(ctx, w, "failed to schedule appointment", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toAppointmentResponse(0, a))
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "appointment number must be an integer"))
		return
	}
	if err := h.clinic.Cancel(ctx, chi.URLParam(r, "cpf"), number); err != nil {
		h.writeServiceError(ctx, w, "failed to cancel appointment", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListAppointments(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, toAppointmentResponses(h.clinic.Appointments(r.Context())))
}

func (h *Handler) handleCancelByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	appointmentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid appointment id"))
		return
	}
	if err := h.clinic.CancelByID(ctx, appointmentID); err != nil {
		h.writeServiceError(ctx, w, "failed to cancel appointment", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decode reads and validates a JSON body, writing the error response itself
// when it returns false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	ctx := r.Context()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WarnContext(ctx, "invalid request body",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.logger.WarnContext(ctx, "request validation failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, validationMessage(err)))
		return false
	}
	return true
}

func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
	} else {
		h.logger.WarnContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
	}
	httputil.WriteError(w, err)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Field() + " failed " + fe.Tag() + " validation"
	}
	return "invalid request"
}
