package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"alexa-cloud-bridge/internal/domain/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	repo := NewYAMLConfigRepository(filepath.Join(t.TempDir(), "nope.yaml"))
	cfg, err := repo.Load()

	assert.NoError(t, err)
	assert.Equal(t, "https://api.gooee.io", cfg.Vendor.BaseURL)
	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Empty(t, cfg.Telemetry.DSN)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
vendor:
  base_url: "https://vendor.example.com"
server:
  listen_addr: ":9090"
logging:
  level: "debug"
`)

	cfg, err := NewYAMLConfigRepository(path).Load()

	assert.NoError(t, err)
	assert.Equal(t, "https://vendor.example.com", cfg.Vendor.BaseURL)
	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Sections absent from the file keep their defaults.
	assert.Equal(t, "configs/device-template.json", cfg.Descriptors.DevicePath)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("API_URL", "api.vendor.example.com")
	t.Setenv("SENTRY_DSN", "https://key@sentry.example.com/1")
	t.Setenv("SENTRY_ENVIRONMENT", "staging")

	cfg, err := NewYAMLConfigRepository(filepath.Join(t.TempDir(), "nope.yaml")).Load()

	assert.NoError(t, err)
	// A bare host gets the https scheme prepended.
	assert.Equal(t, "https://api.vendor.example.com", cfg.Vendor.BaseURL)
	assert.Equal(t, "https://key@sentry.example.com/1", cfg.Telemetry.DSN)
	assert.Equal(t, "staging", cfg.Telemetry.Environment)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "vendor: [not a mapping")
	_, err := NewYAMLConfigRepository(path).Load()
	assert.Error(t, err)
}

const testManifest = `{
	"endpointId": "",
	"friendlyName": "",
	"cookie": {"type": "device"},
	"capabilities": [
		{"type": "AlexaInterface", "interface": "Alexa.PowerController", "version": "3",
		 "properties": {"supported": [{"name": "powerState"}], "retrievable": true}}
	]
}`

func TestDescriptorRepository(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewJSONDescriptorRepository(model.DescriptorsConfig{
		DevicePath: writeFile(t, dir, "device.json", testManifest),
		SpacePath:  writeFile(t, dir, "space.json", testManifest),
	})
	assert.NoError(t, err)

	device, err := repo.Descriptor(model.EndpointTypeDevice)
	assert.NoError(t, err)
	assert.Len(t, device.Capabilities, 1)

	space, err := repo.Descriptor(model.EndpointTypeSpace)
	assert.NoError(t, err)
	assert.NotNil(t, space)

	_, err = repo.Descriptor("room")
	assert.Error(t, err)
	assert.Equal(t, model.ErrInvalidDirective, model.KindOf(err))
}

func TestDescriptorRepositoryMissingFile(t *testing.T) {
	_, err := NewJSONDescriptorRepository(model.DescriptorsConfig{
		DevicePath: filepath.Join(t.TempDir(), "nope.json"),
		SpacePath:  filepath.Join(t.TempDir(), "nope.json"),
	})
	assert.Error(t, err)
}

func TestShippedDescriptorsParse(t *testing.T) {
	repo, err := NewJSONDescriptorRepository(model.DescriptorsConfig{
		DevicePath: "../../../../configs/device-template.json",
		SpacePath:  "../../../../configs/space-template.json",
	})
	assert.NoError(t, err)

	device, err := repo.Descriptor(model.EndpointTypeDevice)
	assert.NoError(t, err)
	names := map[string]bool{}
	for _, c := range device.Retrievable() {
		names[c.Name] = true
	}
	assert.True(t, names["powerState"])
	assert.True(t, names["brightness"])
	assert.True(t, names["connectivity"])
	assert.False(t, names["powerLevel"])

	space, err := repo.Descriptor(model.EndpointTypeSpace)
	assert.NoError(t, err)
	assert.Len(t, space.Retrievable(), 3)
}
