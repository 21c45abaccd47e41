package model

import (
	"time"

	"github.com/google/uuid"
)

// PayloadVersion is the assistant smart-home API version spoken by this
// bridge.
const PayloadVersion = "3"

// Uncertainty reported on every sampled property, in milliseconds.
const propertyUncertaintyMS = 500

// timeOfSampleFormat matches the assistant's expected timestamp shape.
const timeOfSampleFormat = "2006-01-02T15:04:05.00Z"

// Envelope is the outbound response wrapper. Context is only present on
// state-affecting and state-reporting responses.
type Envelope struct {
	Context *Context `json:"context,omitempty"`
	Event   Event    `json:"event"`
}

type Context struct {
	Properties []Property `json:"properties"`
}

// Property is one reported capability value.
type Property struct {
	Namespace                 string `json:"namespace"`
	Name                      string `json:"name"`
	Value                     any    `json:"value"`
	TimeOfSample              string `json:"timeOfSample"`
	UncertaintyInMilliseconds int    `json:"uncertaintyInMilliseconds"`
}

type Event struct {
	Header   Header         `json:"header"`
	Endpoint *Endpoint      `json:"endpoint,omitempty"`
	Payload  map[string]any `json:"payload"`
}

// NewEventHeader builds a response header with a fresh message id.
// An empty correlationToken is omitted from the encoded output.
func NewEventHeader(namespace, name, correlationToken string) Header {
	return Header{
		Namespace:        namespace,
		Name:             name,
		PayloadVersion:   PayloadVersion,
		MessageID:        uuid.NewString(),
		CorrelationToken: correlationToken,
	}
}

// NewProperty builds one context property sampled now.
func NewProperty(namespace, name string, value any) Property {
	return Property{
		Namespace:                 namespace,
		Name:                      name,
		Value:                     value,
		TimeOfSample:              time.Now().UTC().Format(timeOfSampleFormat),
		UncertaintyInMilliseconds: propertyUncertaintyMS,
	}
}

// ErrorEnvelope shapes the standard assistant error response. The endpoint
// block is only attached when the failing directive targeted one.
func ErrorEnvelope(errType, message, correlationToken, endpointID string) *Envelope {
	env := &Envelope{
		Event: Event{
			Header: NewEventHeader("Alexa", "ErrorResponse", correlationToken),
			Payload: map[string]any{
				"type":    errType,
				"message": message,
			},
		},
	}
	if endpointID != "" {
		env.Event.Endpoint = &Endpoint{EndpointID: endpointID}
	}
	return env
}
