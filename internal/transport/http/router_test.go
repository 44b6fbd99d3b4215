package httptransport

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic/internal/clinic/handler"
	"clinic/internal/clinic/metrics"
	"clinic/internal/clinic/registry"
	"clinic/internal/clinic/service"
	"clinic/internal/platform/logger"
	"clinic/internal/platform/middleware"
	"clinic/pkg/testutil"
)

type panicRoutes struct{}

func (panicRoutes) Register(r chi.Router) {
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
}

func newTestRouter(t *testing.T, cfg RouterConfig, extra ...RouteRegistrar) (http.Handler, *metrics.Metrics) {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	reg, err := registry.New(registry.WithMetrics(m))
	require.NoError(t, err)
	svc, err := service.New(reg, service.WithMetrics(m))
	require.NoError(t, err)

	handlers := append([]RouteRegistrar{handler.New(svc, logger.Discard())}, extra...)
	return NewRouter(cfg, logger.Discard(), m, handlers...), m
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t, RouterConfig{CORSOrigins: []string{"*"}})

	rec := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_EchoesRequestID(t *testing.T) {
	router, _ := newTestRouter(t, RouterConfig{})

	req := testutil.NewRequest(t, http.MethodGet, "/doctors")
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	rec := testutil.DoRequest(router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_RecoversPanics(t *testing.T) {
	router, _ := newTestRouter(t, RouterConfig{}, panicRoutes{})

	rec := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/boom"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", testutil.ErrorCode(t, rec))
}

func TestRouter_RateLimitsByIP(t *testing.T) {
	router, _ := newTestRouter(t, RouterConfig{RateLimit: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := testutil.NewRequest(t, http.MethodGet, "/doctors")
		req.RemoteAddr = "203.0.113.7:5555"
		codes = append(codes, testutil.DoRequest(router, req).Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := testutil.NewRequest(t, http.MethodGet, "/doctors")
	other.RemoteAddr = "198.51.100.1:5555"
	assert.Equal(t, http.StatusOK, testutil.DoRequest(router, other).Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t, RouterConfig{CORSOrigins: []string{"https://front.example"}})

	req := testutil.NewRequest(t, http.MethodOptions, "/patients")
	req.Header.Set("Origin", "https://front.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := testutil.DoRequest(router, req)

	assert.Equal(t, "https://front.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RecordsMetrics(t *testing.T) {
	router, m := newTestRouter(t, RouterConfig{})

	rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/patients",
		map[string]any{"cpf": "11144477735", "name": "Ana", "age": 30, "sex": "F"}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/patients/11144477735/appointments",
		map[string]any{"doctor_number": 2, "date": "02/02/2030", "time": "10:00", "reason": "rotina"}))
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, 1.0, promtest.ToFloat64(m.PatientsRegistered))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.AppointmentsScheduled))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.AppointmentsActive))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.CPFValidations.WithLabelValues("valid")))
	assert.Equal(t, 2, promtest.CollectAndCount(m.RequestDuration))
}
