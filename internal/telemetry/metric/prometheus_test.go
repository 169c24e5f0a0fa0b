package metric

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistry_Collectors(t *testing.T) {
	r := NewRegistry()

	r.RequestsTotal.WithLabelValues("GET", "/veiculos", "200").Inc()
	r.RequestDuration.WithLabelValues("GET", "/veiculos").Observe(0.042)
	r.RequestsLimited.Inc()
	r.VehiclesActive.Set(3)

	if got := testutil.ToFloat64(r.RequestsTotal.WithLabelValues("GET", "/veiculos", "200")); got != 1 {
		t.Errorf("requests counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.RequestsLimited); got != 1 {
		t.Errorf("rate-limited counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.VehiclesActive); got != 3 {
		t.Errorf("vehicles gauge = %v, want 3", got)
	}
}

func TestRegistry_ObserveLogin(t *testing.T) {
	r := NewRegistry()

	r.ObserveLogin(true)
	r.ObserveLogin(true)
	r.ObserveLogin(false)

	if got := testutil.ToFloat64(r.LoginsTotal.WithLabelValues("success")); got != 2 {
		t.Errorf("success logins = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.LoginsTotal.WithLabelValues("failure")); got != 1 {
		t.Errorf("failure logins = %v, want 1", got)
	}
}

func TestRegistry_Handler(t *testing.T) {
	r := NewRegistry()
	r.VehiclesActive.Set(5)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "fleetdesk_vehicles_active 5") {
		t.Errorf("exposition missing vehicles gauge:\n%s", body)
	}
}

func TestNewRegistry_IsolatedRegistries(t *testing.T) {
	// Two registries must not clash (a shared default registry would
	// panic on the second MustRegister).
	a := NewRegistry()
	b := NewRegistry()

	a.RequestsLimited.Inc()
	if got := testutil.ToFloat64(b.RequestsLimited); got != 0 {
		t.Errorf("registries share state: %v", got)
	}
}
