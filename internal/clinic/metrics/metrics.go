package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the clinic registry and its HTTP surface.
type Metrics struct {
	PatientsRegistered    prometheus.Counter
	AppointmentsScheduled prometheus.Counter
	AppointmentsRemoved   prometheus.Counter
	AppointmentsActive    prometheus.Gauge
	CPFValidations        *prometheus.CounterVec
	RequestDuration       *prometheus.HistogramVec
}

// New registers all clinic metrics on reg. Pass prometheus.DefaultRegisterer
// in binaries and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PatientsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "clinic_patients_registered_total",
			Help: "Total number of patients registered",
		}),
		AppointmentsScheduled: factory.NewCounter(prometheus.CounterOpts{
			Name: "clinic_appointments_scheduled_total",
			Help: "Total number of appointments scheduled",
		}),
		AppointmentsRemoved: factory.NewCounter(prometheus.CounterOpts{
			Name: "clinic_appointments_removed_total",
			Help: "Total number of appointments removed",
		}),
		AppointmentsActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "clinic_appointments_active",
			Help: "Appointments currently in the master list",
		}),
		CPFValidations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clinic_cpf_validations_total",
			Help: "CPF validations by result",
		}, []string{"result"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clinic_http_request_duration_seconds",
			Help:    "Duration of clinic HTTP requests by route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
	}
}

func (m *Metrics) IncrementPatientsRegistered() {
	m.PatientsRegistered.Inc()
}

// RecordScheduled counts a scheduled appointment and raises the active gauge.
func (m *Metrics) RecordScheduled() {
	m.AppointmentsScheduled.Inc()
	m.AppointmentsActive.Inc()
}

// RecordRemoved counts a removal and lowers the active gauge.
func (m *Metrics) RecordRemoved() {
	m.AppointmentsRemoved.Inc()
	m.AppointmentsActive.Dec()
}

func (m *Metrics) RecordCPFValidation(valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.CPFValidations.WithLabelValues(result).Inc()
}

// ObserveRequest records the duration of a request.
// Call with time.Now() at the start of the request.
func (m *Metrics) ObserveRequest(route string, start time.Time) {
	m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}
