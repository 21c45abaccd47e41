package service

import (
	"context"

	"alexa-cloud-bridge/internal/domain/model"
	"alexa-cloud-bridge/internal/domain/translator"
)

// handleBrightnessController posts an absolute dim or relative adjust
// action. The response echoes the magnitude of whichever field the
// directive supplied; for a relative adjustment that is the delta, not the
// resulting brightness.
func (s *DirectiveService) handleBrightnessController(ctx context.Context, d *model.Directive) (*model.Envelope, error) {
	payload := map[string]any{
		string(d.EndpointType()): d.EndpointID(),
	}

	var value int
	switch {
	case d.Payload.Brightness != nil:
		value = *d.Payload.Brightness
		payload["name"] = "Alexa brightness request"
		payload["type"] = "dim"
		payload["value"] = map[string]any{"level": value, "transition_time": 1}
	case d.Payload.BrightnessDelta != nil:
		value = *d.Payload.BrightnessDelta
		payload["name"] = "Alexa brightnessDelta request"
		payload["type"] = "adjust"
		payload["value"] = map[string]any{"delta": value, "transition_time": 1}
	default:
		return nil, model.NewError(model.ErrInvalidDirective,
			"brightness directive carries neither brightness nor brightnessDelta")
	}

	if err := s.gateway.Post(ctx, actionsPath, payload, d.BearerToken()); err != nil {
		return nil, err
	}

	if value < 0 {
		value = -value
	}
	return controllerResponse(d, model.NewProperty("Alexa.BrightnessController", translator.PropBrightness, value)), nil
}
