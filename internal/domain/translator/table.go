// Package translator holds the bidirectional mapping between assistant
// capability property names and vendor device-state fields. The table is
// fixed at compile time; there is no runtime registration.
package translator

import (
	"fmt"

	"alexa-cloud-bridge/internal/domain/model"
)

// Assistant-side property names handled by the bridge.
const (
	PropPowerState   = "powerState"
	PropBrightness   = "brightness"
	PropPowerLevel   = "powerLevel"
	PropPercentage   = "percentage"
	PropConnectivity = "connectivity"
)

// Vendor-side state field names.
const (
	FieldOnOff    = "onoff"
	FieldDim      = "dim"
	FieldIsOnline = "is_online"
)

// ConvertFunc turns a vendor state value into the shape the assistant
// expects for the property. Conversions are pure and total over the values
// the vendor emits for their field.
type ConvertFunc func(vendorValue any) any

// Entry binds one assistant property to its vendor field and conversion.
type Entry struct {
	VendorField string
	Convert     ConvertFunc
}

var table = map[string]Entry{
	PropPowerState:   {FieldOnOff, convertOnOff},
	PropBrightness:   {FieldDim, convertIdentity},
	PropPowerLevel:   {FieldDim, convertPowerLevel},
	PropPercentage:   {FieldDim, convertIdentity},
	PropConnectivity: {FieldIsOnline, convertConnectivity},
}

// Lookup resolves an assistant property name to its table entry. Unknown
// names are an internal error: they can only appear if a capability
// manifest names a property the bridge does not translate.
func Lookup(property string) (Entry, error) {
	entry, ok := table[property]
	if !ok {
		return Entry{}, model.WrapError(model.ErrInternal, "Unhandled Error",
			fmt.Errorf("no translation for property %q", property))
	}
	return entry, nil
}

func convertIdentity(v any) any { return v }

func convertOnOff(v any) any {
	if truthy(v) {
		return "ON"
	}
	return "OFF"
}

// convertPowerLevel wraps the dim value in the typed envelope of the
// current vendor schema revision. Earlier revisions passed the value
// through bare; the wrapped form is the one this bridge speaks.
func convertPowerLevel(v any) any {
	return map[string]any{"@type": "IntegralPowerLevel", "value": v}
}

func convertConnectivity(v any) any {
	status := "UNREACHABLE"
	if truthy(v) {
		status = "OK"
	}
	return map[string]any{"value": status}
}

// truthy interprets the loose JSON value shapes the vendor emits for
// boolean-ish fields.
func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case float64:
		return val != 0
	case int:
		return val != 0
	case string:
		return val == "true" || val == "on" || val == "1"
	default:
		return false
	}
}
