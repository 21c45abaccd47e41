package ports

import (
	"context"

	"alexa-cloud-bridge/internal/domain/model"
)

// Dispatcher is the inbound port: one directive in, one envelope out.
// Dispatch never returns an error; every failure is rendered into an
// assistant-compliant error envelope.
type Dispatcher interface {
	Dispatch(ctx context.Context, directive *model.Directive) *model.Envelope
}
