package service

import (
	"alexa-cloud-bridge/internal/domain/model"
	"alexa-cloud-bridge/internal/domain/translator"
)

// VendorState is a normalized vendor field name → value mapping for one
// endpoint, fetched fresh per directive and never cached.
type VendorState map[string]any

// DeviceState reshapes a vendor device object's meta list into a
// VendorState. Entries without a name are skipped.
func DeviceState(obj map[string]any) VendorState {
	state := make(VendorState)
	meta, _ := obj["meta"].([]any)
	for _, raw := range meta {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		name, ok := entry["name"].(string)
		if !ok {
			continue
		}
		state[name] = entry["value"]
	}
	return state
}

// SpaceState collapses a space's member device states into one
// representative state: dim is the arithmetic mean truncated toward zero,
// onoff is a logical OR across members, and is_online is always true
// because a space is never considered offline.
//
// A space whose device_states listing reports no members cannot be
// aggregated; that surfaces as an invalid-directive error rather than a
// division by zero.
func SpaceState(obj map[string]any) (VendorState, error) {
	states, _ := obj["states"].(map[string]any)
	if len(states) == 0 {
		return nil, model.NewError(model.ErrInvalidDirective,
			"space has no reporting member devices")
	}

	var dimTotal float64
	var anyOn bool
	for _, raw := range states {
		member, _ := raw.(map[string]any)
		if dim, ok := member[translator.FieldDim].(float64); ok {
			dimTotal += dim
		}
		switch on := member[translator.FieldOnOff].(type) {
		case bool:
			anyOn = anyOn || on
		case float64:
			anyOn = anyOn || on != 0
		}
	}

	return VendorState{
		translator.FieldDim:      int(dimTotal / float64(len(states))),
		translator.FieldOnOff:    anyOn,
		translator.FieldIsOnline: true,
	}, nil
}
