package service

import (
	"context"
	"fmt"

	"alexa-cloud-bridge/internal/domain/model"
)

// Vendor listing paths. Only wim and bulb device types are discoverable.
const (
	spaceListingPath  = "/spaces/?_include=id,name"
	deviceListingPath = "/devices/?_include=name,id&type__in=wim,bulb"
)

// handleDiscovery projects the caller's scoped spaces and devices into
// discovery endpoints. Missing or rejected credentials degrade to an empty
// endpoint list: the assistant contract requires discovery to succeed with
// zero endpoints rather than fail.
func (s *DirectiveService) handleDiscovery(ctx context.Context, d *model.Directive) (*model.Envelope, error) {
	endpoints := make([]map[string]any, 0)

	token := ""
	if d.Payload.Scope != nil {
		token = d.Payload.Scope.Token
	}
	if token == "" {
		s.logger.Info("discovery without bearer token, returning no endpoints")
		return discoverResponse(endpoints), nil
	}

	spaces, err := s.fetchCategory(ctx, spaceListingPath, token)
	if err != nil {
		return nil, err
	}
	if len(spaces) > 0 {
		desc, err := s.descriptors.Descriptor(model.EndpointTypeSpace)
		if err != nil {
			return nil, err
		}
		for _, item := range spaces {
			endpoints = append(endpoints, projectItem(desc, item))
		}
	}

	devices, err := s.fetchCategory(ctx, deviceListingPath, token)
	if err != nil {
		return nil, err
	}
	if len(devices) > 0 {
		desc, err := s.descriptors.Descriptor(model.EndpointTypeDevice)
		if err != nil {
			return nil, err
		}
		for _, item := range devices {
			endpoints = append(endpoints, projectItem(desc, item))
		}
	}

	return discoverResponse(endpoints), nil
}

// fetchCategory lists one endpoint category. An auth failure empties that
// category without failing the whole discovery; anything else propagates.
func (s *DirectiveService) fetchCategory(ctx context.Context, path, token string) ([]map[string]any, error) {
	items, err := s.gateway.GetList(ctx, path, token)
	if err != nil {
		if model.KindOf(err) == model.ErrAuth {
			s.logger.Info("discovery category fetch unauthorized, skipping", "path", path)
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}

func projectItem(desc *model.Descriptor, item map[string]any) map[string]any {
	id, _ := item["id"].(string)
	name := fmt.Sprint(item["name"])
	return desc.ProjectEndpoint(id, name)
}

func discoverResponse(endpoints []map[string]any) *model.Envelope {
	return &model.Envelope{
		Event: model.Event{
			Header:  model.NewEventHeader("Alexa.Discovery", "Discover.Response", ""),
			Payload: map[string]any{"endpoints": endpoints},
		},
	}
}
