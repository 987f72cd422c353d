package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/schemes/{schemeID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/schemes/{schemeID}", "404")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/schemes/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
	assert.Equal(t, before+2, testutil.ToFloat64(counter))

	okCounter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/ok", "200")
	before = testutil.ToFloat64(okCounter)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(okCounter))
}

func TestGatewayPolls(t *testing.T) {
	before := testutil.ToFloat64(GatewayPolls.WithLabelValues(PollStale))
	GatewayPolls.WithLabelValues(PollStale).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(GatewayPolls.WithLabelValues(PollStale)))
}
