package main

import (
	"StartSitApi/internal/assert"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	app, _, _, _ := newTestApplication(t)

	rr := doRequest(t, app.routes(), http.MethodGet, "/v1/healthcheck", "", nil)
	assert.Equal(t, rr.Code, http.StatusOK)
	assert.Equal(t, rr.Header().Get("Content-Type"), "application/json")

	var body struct {
		Status     string            `json:"status"`
		SystemInfo map[string]string `json:"system_info"`
		SeasonInfo map[string]int    `json:"season_info"`
	}
	decodeBody(t, rr, &body)
	assert.Equal(t, body.Status, "available")
	assert.Equal(t, body.SystemInfo["environment"], "testing")
	assert.Equal(t, body.SeasonInfo["week"], 15)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	app, _, _, _ := newTestApplication(t)

	rr := doRequest(t, app.routes(), http.MethodGet, "/v1/players", "", nil)
	assert.Equal(t, rr.Code, http.StatusNotFound)

	rr = doRequest(t, app.routes(), http.MethodDelete, "/v1/healthcheck", "", nil)
	assert.Equal(t, rr.Code, http.StatusMethodNotAllowed)
}

func TestRateLimit(t *testing.T) {
	app, _, _, _ := newTestApplication(t)
	app.config.limiter.enabled = true
	app.config.limiter.rps = 1
	app.config.limiter.burst = 2

	h := app.routes()
	assert.Equal(t, doRequest(t, h, http.MethodGet, "/v1/healthcheck", "", nil).Code, http.StatusOK)
	assert.Equal(t, doRequest(t, h, http.MethodGet, "/v1/healthcheck", "", nil).Code, http.StatusOK)
	assert.Equal(t, doRequest(t, h, http.MethodGet, "/v1/healthcheck", "", nil).Code,
		http.StatusTooManyRequests)
}

func TestRecoverPanic(t *testing.T) {
	app, _, _, _ := newTestApplication(t)

	h := app.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, rr.Code, http.StatusInternalServerError)
	assert.Equal(t, rr.Header().Get("Connection"), "close")
}

func TestEnableCORS(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		origin     string
		preflight  bool
		wantOrigin string
		wantCode   int
	}{
		{name: "Trusted Preflight", method: http.MethodOptions, origin: "https://startsit.app",
			preflight: true, wantOrigin: "https://startsit.app", wantCode: http.StatusOK},
		{name: "Trusted Simple", method: http.MethodGet, origin: "https://startsit.app",
			wantOrigin: "https://startsit.app", wantCode: http.StatusOK},
		{name: "Untrusted", method: http.MethodGet, origin: "https://evil.example",
			wantOrigin: "", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _, _ := newTestApplication(t)
			app.config.cors.trustedOrigins = []string{"https://startsit.app"}

			headers := map[string]string{"Origin": tt.origin}
			if tt.preflight {
				headers["Access-Control-Request-Method"] = http.MethodPost
			}

			rr := doRequest(t, app.routes(), tt.method, "/v1/healthcheck", "", headers)
			assert.Equal(t, rr.Code, tt.wantCode)
			assert.Equal(t, rr.Header().Get("Access-Control-Allow-Origin"), tt.wantOrigin)
		})
	}
}
