package persistence

import (
	"fmt"
	"os"

	"alexa-cloud-bridge/internal/domain/model"
)

// JSONDescriptorRepository holds the two capability manifests, one per
// endpoint type, parsed once at construction.
type JSONDescriptorRepository struct {
	device *model.Descriptor
	space  *model.Descriptor
}

func NewJSONDescriptorRepository(cfg model.DescriptorsConfig) (*JSONDescriptorRepository, error) {
	device, err := loadDescriptor(cfg.DevicePath)
	if err != nil {
		return nil, err
	}
	space, err := loadDescriptor(cfg.SpacePath)
	if err != nil {
		return nil, err
	}
	return &JSONDescriptorRepository{device: device, space: space}, nil
}

func (r *JSONDescriptorRepository) Descriptor(endpointType model.EndpointType) (*model.Descriptor, error) {
	switch endpointType {
	case model.EndpointTypeDevice:
		return r.device, nil
	case model.EndpointTypeSpace:
		return r.space, nil
	default:
		return nil, model.NewError(model.ErrInvalidDirective,
			fmt.Sprintf("unknown endpoint type %q", endpointType))
	}
}

func loadDescriptor(path string) (*model.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor %s: %w", path, err)
	}
	desc, err := model.ParseDescriptor(data)
	if err != nil {
		return nil, fmt.Errorf("parsing descriptor %s: %w", path, err)
	}
	return desc, nil
}
