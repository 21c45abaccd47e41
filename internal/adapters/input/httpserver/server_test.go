package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"alexa-cloud-bridge/internal/domain/model"
	"alexa-cloud-bridge/internal/logging"
)

type stubDispatcher struct {
	lastDirective *model.Directive
	envelope      *model.Envelope
}

func (s *stubDispatcher) Dispatch(_ context.Context, d *model.Directive) *model.Envelope {
	s.lastDirective = d
	return s.envelope
}

func newTestServer(envelope *model.Envelope) (*Server, *stubDispatcher) {
	dispatcher := &stubDispatcher{envelope: envelope}
	return New(model.ServerConfig{ListenAddr: ":0"}, dispatcher, logging.Default()), dispatcher
}

func TestHandleDirective(t *testing.T) {
	envelope := &model.Envelope{
		Event: model.Event{
			Header:  model.NewEventHeader("Alexa", "Response", "corr-1"),
			Payload: map[string]any{},
		},
	}
	server, dispatcher := newTestServer(envelope)

	body := `{"directive": {"header": {"namespace": "Alexa.PowerController", "name": "TurnOn"},
		"endpoint": {"endpointId": "appliance-001", "scope": {"type": "BearerToken", "token": "tok"},
		"cookie": {"type": "device"}}, "payload": {}}}`
	req := httptest.NewRequest(http.MethodPost, "/directive", strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "appliance-001", dispatcher.lastDirective.EndpointID())
	assert.Equal(t, model.KindPowerController, dispatcher.lastDirective.Kind())

	var got model.Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Response", got.Event.Header.Name)
	assert.Equal(t, "corr-1", got.Event.Header.CorrelationToken)
}

func TestHandleDirectiveMalformed(t *testing.T) {
	server, dispatcher := newTestServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/directive", strings.NewReader(`{"directive": [`))
	rec := httptest.NewRecorder()
	server.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, dispatcher.lastDirective)

	var got model.Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ErrorResponse", got.Event.Header.Name)
	assert.Equal(t, "INVALID_DIRECTIVE", got.Event.Payload["type"])
}

func TestHealthz(t *testing.T) {
	server, _ := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	server.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
