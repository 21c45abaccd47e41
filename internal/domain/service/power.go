package service

import (
	"context"
	"strings"

	"alexa-cloud-bridge/internal/domain/model"
	"alexa-cloud-bridge/internal/domain/translator"
)

const actionsPath = "/actions"

// handlePowerController posts an on/off action and answers optimistically:
// the reported powerState assumes the accepted action took effect, with no
// confirmation re-fetch.
func (s *DirectiveService) handlePowerController(ctx context.Context, d *model.Directive) (*model.Envelope, error) {
	value := "OFF"
	if d.Header.Name == "TurnOn" {
		value = "ON"
	}

	payload := map[string]any{
		"name":                   "Alexa " + value + " request",
		"type":                   strings.ToLower(value),
		"value":                  map[string]any{"transition_time": 2},
		string(d.EndpointType()): d.EndpointID(),
	}

	if err := s.gateway.Post(ctx, actionsPath, payload, d.BearerToken()); err != nil {
		return nil, err
	}

	return controllerResponse(d, model.NewProperty("Alexa.PowerController", translator.PropPowerState, value)), nil
}

// controllerResponse is the shared success envelope for the power and
// brightness controllers: one reported property, scope and endpoint
// echoed, correlation token echoed.
func controllerResponse(d *model.Directive, property model.Property) *model.Envelope {
	return &model.Envelope{
		Context: &model.Context{Properties: []model.Property{property}},
		Event: model.Event{
			Header: model.NewEventHeader("Alexa", "Response", d.Header.CorrelationToken),
			Endpoint: &model.Endpoint{
				EndpointID: d.EndpointID(),
				Scope:      &model.Scope{Type: "BearerToken", Token: d.BearerToken()},
			},
			Payload: map[string]any{},
		},
	}
}
