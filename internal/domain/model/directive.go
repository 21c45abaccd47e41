package model

import "encoding/json"

// EndpointType distinguishes a single device from a named group ("space").
// It travels in the directive cookie and selects the capability descriptor
// and the vendor endpoint used for state fetches.
type EndpointType string

const (
	EndpointTypeDevice EndpointType = "device"
	EndpointTypeSpace  EndpointType = "space"
)

// DirectiveKind is the closed set of directive families the bridge handles.
// It is derived exactly once when the request is decoded; everything past
// the boundary switches on the kind, never on raw header strings.
type DirectiveKind int

const (
	KindUnknown DirectiveKind = iota
	KindDiscover
	KindReportState
	KindPowerController
	KindBrightnessController
	KindAuthorization
)

func (k DirectiveKind) String() string {
	switch k {
	case KindDiscover:
		return "Discover"
	case KindReportState:
		return "ReportState"
	case KindPowerController:
		return "PowerController"
	case KindBrightnessController:
		return "BrightnessController"
	case KindAuthorization:
		return "Authorization"
	default:
		return "Unknown"
	}
}

// Request is the inbound message wrapper.
type Request struct {
	Directive Directive `json:"directive"`
}

// Directive is an inbound command or query from the voice assistant.
// Immutable once decoded.
type Directive struct {
	Header   Header           `json:"header"`
	Endpoint *Endpoint        `json:"endpoint,omitempty"`
	Payload  DirectivePayload `json:"payload"`
}

type Header struct {
	Namespace        string `json:"namespace"`
	Name             string `json:"name"`
	PayloadVersion   string `json:"payloadVersion,omitempty"`
	MessageID        string `json:"messageId,omitempty"`
	CorrelationToken string `json:"correlationToken,omitempty"`
}

type Endpoint struct {
	EndpointID string  `json:"endpointId"`
	Scope      *Scope  `json:"scope,omitempty"`
	Cookie     *Cookie `json:"cookie,omitempty"`
}

type Scope struct {
	Type  string `json:"type,omitempty"`
	Token string `json:"token,omitempty"`
}

// Cookie carries the out-of-band endpoint type tag planted at discovery
// time and echoed back by the assistant on every subsequent directive.
type Cookie struct {
	Type EndpointType `json:"type,omitempty"`
}

// DirectivePayload covers the union of payload fields across the handled
// directive families. Pointer fields distinguish "absent" from zero.
type DirectivePayload struct {
	Scope           *Scope `json:"scope,omitempty"`
	Grantee         *Scope `json:"grantee,omitempty"`
	Brightness      *int   `json:"brightness,omitempty"`
	BrightnessDelta *int   `json:"brightnessDelta,omitempty"`
}

// Kind classifies the directive. Precedence follows the assistant's
// routing rules: Discover and ReportState match on the header name
// regardless of namespace, the rest match on namespace.
func (d *Directive) Kind() DirectiveKind {
	switch {
	case d.Header.Name == "Discover":
		return KindDiscover
	case d.Header.Name == "ReportState":
		return KindReportState
	case d.Header.Namespace == "Alexa.PowerController":
		return KindPowerController
	case d.Header.Namespace == "Alexa.BrightnessController":
		return KindBrightnessController
	case d.Header.Namespace == "Alexa.Authorization":
		return KindAuthorization
	default:
		return KindUnknown
	}
}

// EndpointID returns the target endpoint id, or "" for directives without
// an endpoint (discovery, grant).
func (d *Directive) EndpointID() string {
	if d.Endpoint == nil {
		return ""
	}
	return d.Endpoint.EndpointID
}

// EndpointType returns the endpoint type tag carried in the cookie,
// defaulting to device when absent.
func (d *Directive) EndpointType() EndpointType {
	if d.Endpoint == nil || d.Endpoint.Cookie == nil || d.Endpoint.Cookie.Type == "" {
		return EndpointTypeDevice
	}
	return d.Endpoint.Cookie.Type
}

// BearerToken returns the credential the directive carries, looking in the
// endpoint scope first and falling back to the payload scope (discovery
// carries it there). Tokens are request-scoped and never stored.
func (d *Directive) BearerToken() string {
	if d.Endpoint != nil && d.Endpoint.Scope != nil {
		return d.Endpoint.Scope.Token
	}
	if d.Payload.Scope != nil {
		return d.Payload.Scope.Token
	}
	return ""
}

// DecodeRequest parses an inbound message.
func DecodeRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
