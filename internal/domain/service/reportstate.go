package service

import (
	"context"
	"fmt"

	"alexa-cloud-bridge/internal/domain/model"
	"alexa-cloud-bridge/internal/domain/translator"
)

// handleReportState fetches the endpoint's current vendor state, space
// states aggregated across members, and emits one context property per
// retrievable capability of the endpoint type.
func (s *DirectiveService) handleReportState(ctx context.Context, d *model.Directive) (*model.Envelope, error) {
	endpointID := d.EndpointID()
	endpointType := d.EndpointType()
	token := d.BearerToken()

	state, err := s.fetchState(ctx, endpointType, endpointID, token)
	if err != nil {
		return nil, err
	}

	desc, err := s.descriptors.Descriptor(endpointType)
	if err != nil {
		return nil, err
	}

	properties := make([]model.Property, 0)
	for _, capability := range desc.Retrievable() {
		entry, err := translator.Lookup(capability.Name)
		if err != nil {
			return nil, err
		}
		raw, ok := state[entry.VendorField]
		if !ok {
			return nil, model.NewError(model.ErrPropertyUnavailable,
				fmt.Sprintf("vendor state for %s is missing field %s", endpointID, entry.VendorField))
		}
		properties = append(properties, model.NewProperty(capability.Interface, capability.Name, entry.Convert(raw)))
	}

	return &model.Envelope{
		Context: &model.Context{Properties: properties},
		Event: model.Event{
			Header: model.NewEventHeader("Alexa", "StateReport", d.Header.CorrelationToken),
			Endpoint: &model.Endpoint{
				EndpointID: endpointID,
				Scope:      &model.Scope{Type: "BearerToken", Token: token},
			},
			Payload: map[string]any{},
		},
	}, nil
}

// fetchState resolves the fresh vendor state for one endpoint. Device
// state is read straight off the device object; space state is derived
// from the member device_states listing.
func (s *DirectiveService) fetchState(ctx context.Context, endpointType model.EndpointType, endpointID, token string) (VendorState, error) {
	if endpointType == model.EndpointTypeDevice {
		obj, err := s.gateway.GetObject(ctx, "/devices/"+endpointID, token)
		if err != nil {
			return nil, err
		}
		return DeviceState(obj), nil
	}

	obj, err := s.gateway.GetObject(ctx, "/spaces/"+endpointID+"/device_states", token)
	if err != nil {
		return nil, err
	}
	return SpaceState(obj)
}
