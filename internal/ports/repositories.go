package ports

import "alexa-cloud-bridge/internal/domain/model"

// ConfigRepository loads the process configuration once at startup.
type ConfigRepository interface {
	Load() (*model.Config, error)
}

// DescriptorRepository resolves the static capability manifest for an
// endpoint type. Descriptors are loaded at startup and immutable after.
type DescriptorRepository interface {
	Descriptor(endpointType model.EndpointType) (*model.Descriptor, error)
}
