package model

import "encoding/json"

// Capability is the parsed view of one entry in a descriptor's
// capabilities array: which assistant interface it belongs to, the
// assistant-side property name used for translation lookups, and whether
// the property appears in state reports.
type Capability struct {
	Interface   string
	Name        string
	Retrievable bool
}

// Descriptor is the static capability manifest for one endpoint type.
// Template holds the verbatim discovery endpoint document; Capabilities is
// the parsed view ReportState iterates. Both are read-only at runtime.
type Descriptor struct {
	Template     map[string]any
	Capabilities []Capability
}

// Retrievable returns the capabilities included in state reports, in
// manifest order.
func (d *Descriptor) Retrievable() []Capability {
	out := make([]Capability, 0, len(d.Capabilities))
	for _, c := range d.Capabilities {
		if c.Retrievable {
			out = append(out, c)
		}
	}
	return out
}

// ProjectEndpoint deep-copies the discovery template and stamps the
// per-endpoint identity fields onto it. The template itself is never
// mutated.
func (d *Descriptor) ProjectEndpoint(endpointID, friendlyName string) map[string]any {
	out := deepCopy(d.Template)
	out["endpointId"] = endpointID
	out["friendlyName"] = friendlyName
	return out
}

func deepCopy(in map[string]any) map[string]any {
	// Round-tripping through JSON is the simplest faithful copy for a
	// document that arrived as JSON in the first place.
	raw, _ := json.Marshal(in)
	var out map[string]any
	_ = json.Unmarshal(raw, &out)
	return out
}

// ParseDescriptor decodes a capability manifest document and derives the
// parsed capability view. Entries without a supported property list (the
// bare "Alexa" interface) are kept in the template but contribute nothing
// to state reports.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	var template map[string]any
	if err := json.Unmarshal(data, &template); err != nil {
		return nil, err
	}

	var doc struct {
		Capabilities []struct {
			Interface  string `json:"interface"`
			Properties *struct {
				Supported []struct {
					Name string `json:"name"`
				} `json:"supported"`
				Retrievable bool `json:"retrievable"`
			} `json:"properties"`
		} `json:"capabilities"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	d := &Descriptor{Template: template}
	for _, c := range doc.Capabilities {
		if c.Properties == nil || len(c.Properties.Supported) == 0 {
			continue
		}
		d.Capabilities = append(d.Capabilities, Capability{
			Interface:   c.Interface,
			Name:        c.Properties.Supported[0].Name,
			Retrievable: c.Properties.Retrievable,
		})
	}
	return d, nil
}
