package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsLabelsByRouteTemplate(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Metrics)
	r.HandleFunc("/properties/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Methods("GET")

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/properties/{id}", "418"))

	req := httptest.NewRequest("GET", "/properties/42", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/properties/{id}", "418"))
	if after != before+1 {
		t.Errorf("Expected counter for route template to increment, got %v -> %v", before, after)
	}
}

func TestStatusWriterDefaultsToOK(t *testing.T) {
	sw := newStatusWriter(httptest.NewRecorder())
	if sw.statusCode != http.StatusOK {
		t.Errorf("Expected default status 200, got %d", sw.statusCode)
	}
	sw.WriteHeader(http.StatusNotFound)
	if sw.statusCode != http.StatusNotFound {
		t.Errorf("Expected captured status 404, got %d", sw.statusCode)
	}
}
