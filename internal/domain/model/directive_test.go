package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindPrecedence(t *testing.T) {
	cases := []struct {
		namespace string
		name      string
		want      DirectiveKind
	}{
		{"Alexa.Discovery", "Discover", KindDiscover},
		{"Alexa", "ReportState", KindReportState},
		{"Alexa.PowerController", "TurnOn", KindPowerController},
		{"Alexa.PowerController", "TurnOff", KindPowerController},
		{"Alexa.BrightnessController", "SetBrightness", KindBrightnessController},
		{"Alexa.BrightnessController", "AdjustBrightness", KindBrightnessController},
		{"Alexa.Authorization", "AcceptGrant", KindAuthorization},
		{"unhandled", "unhandled", KindUnknown},
		// Name-based routes win over namespace-based ones.
		{"Alexa.PowerController", "ReportState", KindReportState},
	}

	for _, c := range cases {
		d := &Directive{Header: Header{Namespace: c.namespace, Name: c.name}}
		assert.Equal(t, c.want, d.Kind(), "%s/%s", c.namespace, c.name)
	}
}

func TestBearerTokenPrecedence(t *testing.T) {
	d := &Directive{
		Endpoint: &Endpoint{Scope: &Scope{Token: "endpoint-token"}},
		Payload:  DirectivePayload{Scope: &Scope{Token: "payload-token"}},
	}
	assert.Equal(t, "endpoint-token", d.BearerToken())

	d = &Directive{Payload: DirectivePayload{Scope: &Scope{Token: "payload-token"}}}
	assert.Equal(t, "payload-token", d.BearerToken())

	d = &Directive{}
	assert.Empty(t, d.BearerToken())
}

func TestEndpointTypeDefaultsToDevice(t *testing.T) {
	d := &Directive{}
	assert.Equal(t, EndpointTypeDevice, d.EndpointType())

	d = &Directive{Endpoint: &Endpoint{EndpointID: "x"}}
	assert.Equal(t, EndpointTypeDevice, d.EndpointType())

	d = &Directive{Endpoint: &Endpoint{Cookie: &Cookie{Type: EndpointTypeSpace}}}
	assert.Equal(t, EndpointTypeSpace, d.EndpointType())
}

func TestDecodeRequest(t *testing.T) {
	raw := `{
		"directive": {
			"header": {
				"namespace": "Alexa.BrightnessController",
				"name": "SetBrightness",
				"payloadVersion": "3",
				"messageId": "msg-1",
				"correlationToken": "corr-1"
			},
			"endpoint": {
				"endpointId": "appliance-001",
				"scope": {"type": "BearerToken", "token": "secret"},
				"cookie": {"type": "space"}
			},
			"payload": {"brightness": 42}
		}
	}`

	req, err := DecodeRequest([]byte(raw))
	assert.NoError(t, err)

	d := req.Directive
	assert.Equal(t, KindBrightnessController, d.Kind())
	assert.Equal(t, "corr-1", d.Header.CorrelationToken)
	assert.Equal(t, "appliance-001", d.EndpointID())
	assert.Equal(t, EndpointTypeSpace, d.EndpointType())
	assert.Equal(t, "secret", d.BearerToken())
	if assert.NotNil(t, d.Payload.Brightness) {
		assert.Equal(t, 42, *d.Payload.Brightness)
	}
	assert.Nil(t, d.Payload.BrightnessDelta)
}

func TestDecodeRequestMalformed(t *testing.T) {
	_, err := DecodeRequest([]byte(`{"directive": [`))
	assert.Error(t, err)
}
