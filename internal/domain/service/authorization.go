package service

import (
	"context"
	"fmt"

	"alexa-cloud-bridge/internal/domain/model"
)

// handleAuthorization acknowledges an AcceptGrant. No vendor call is made
// and no correlation token is echoed; the grant credentials are not
// retained because this bridge does not issue tokens.
func (s *DirectiveService) handleAuthorization(ctx context.Context, d *model.Directive) (*model.Envelope, error) {
	if d.Header.Name != "AcceptGrant" {
		return nil, model.WrapError(model.ErrInternal, "Unhandled Error",
			fmt.Errorf("unsupported authorization directive %q", d.Header.Name))
	}

	return &model.Envelope{
		Event: model.Event{
			Header:  model.NewEventHeader("Alexa.Authorization", "AcceptGrant.Response", ""),
			Payload: map[string]any{},
		},
	}, nil
}
