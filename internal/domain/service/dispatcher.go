package service

import (
	"context"
	"fmt"

	"alexa-cloud-bridge/internal/domain/model"
	"alexa-cloud-bridge/internal/logging"
	"alexa-cloud-bridge/internal/ports"
)

// DirectiveService routes inbound directives to their handlers and shapes
// every outcome, success or failure, into an assistant-compliant envelope.
// It holds no mutable state; each Dispatch call is an independent
// transaction.
type DirectiveService struct {
	gateway     ports.VendorGateway
	descriptors ports.DescriptorRepository
	telemetry   ports.Telemetry
	logger      *logging.Logger
}

func NewDirectiveService(gateway ports.VendorGateway, descriptors ports.DescriptorRepository, telemetry ports.Telemetry, logger *logging.Logger) *DirectiveService {
	return &DirectiveService{
		gateway:     gateway,
		descriptors: descriptors,
		telemetry:   telemetry,
		logger:      logger,
	}
}

// Dispatch classifies the directive once and matches exhaustively on the
// kind. It never returns an error: failures become error envelopes here,
// and this is also the single place that decides telemetry reporting.
func (s *DirectiveService) Dispatch(ctx context.Context, d *model.Directive) (env *model.Envelope) {
	kind := d.Kind()
	s.logger.Info("directive received",
		"kind", kind.String(),
		"namespace", d.Header.Namespace,
		"name", d.Header.Name,
		"endpointId", d.EndpointID(),
		"hasToken", d.BearerToken() != "")

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic in %s handler: %v", kind, r)
			env = s.errorEnvelope(d, kind, err)
		}
	}()

	var err error
	switch kind {
	case model.KindDiscover:
		env, err = s.handleDiscovery(ctx, d)
	case model.KindReportState:
		env, err = s.handleReportState(ctx, d)
	case model.KindPowerController:
		env, err = s.handlePowerController(ctx, d)
	case model.KindBrightnessController:
		env, err = s.handleBrightnessController(ctx, d)
	case model.KindAuthorization:
		env, err = s.handleAuthorization(ctx, d)
	default:
		err = model.WrapError(model.ErrInternal, "Unhandled Error",
			fmt.Errorf("unsupported directive %s/%s", d.Header.Namespace, d.Header.Name))
	}
	if err != nil {
		return s.errorEnvelope(d, kind, err)
	}

	s.logger.Info("directive handled",
		"kind", kind.String(),
		"responseName", env.Event.Header.Name)
	return env
}

// errorEnvelope converts any failure into the standard error response.
// The correlation token is echoed except for discovery and for grant-style
// directives that never carried one; the endpoint id is carried over
// whenever the directive had one.
func (s *DirectiveService) errorEnvelope(d *model.Directive, kind model.DirectiveKind, err error) *model.Envelope {
	errKind := model.KindOf(err)

	correlation := d.Header.CorrelationToken
	if kind == model.KindDiscover {
		correlation = ""
	}

	s.logger.Error("directive failed",
		"kind", kind.String(),
		"errorKind", errKind.AssistantType(),
		"error", err.Error())

	if errKind.Reportable() {
		s.telemetry.ReportError(err, kind.String())
	}

	return model.ErrorEnvelope(errKind.AssistantType(), model.MessageOf(err), correlation, d.EndpointID())
}
