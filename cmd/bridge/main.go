package main

import (
	"log"
	"os"

	"alexa-cloud-bridge/internal/adapters/input/httpserver"
	"alexa-cloud-bridge/internal/adapters/output/persistence"
	"alexa-cloud-bridge/internal/adapters/output/telemetry"
	"alexa-cloud-bridge/internal/adapters/output/vendorapi"
	"alexa-cloud-bridge/internal/domain/service"
	"alexa-cloud-bridge/internal/logging"
)

var version = "dev"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := persistence.NewYAMLConfigRepository(configPath).Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger := logging.New(cfg.Logging, version)

	descriptors, err := persistence.NewJSONDescriptorRepository(cfg.Descriptors)
	if err != nil {
		logger.Error("loading capability descriptors", "error", err.Error())
		os.Exit(1)
	}

	sink, err := telemetry.New(cfg.Telemetry, logger)
	if err != nil {
		logger.Error("configuring telemetry", "error", err.Error())
		os.Exit(1)
	}
	if reporter, ok := sink.(*telemetry.SentryReporter); ok {
		defer reporter.Close()
	}

	gateway := vendorapi.NewClient(cfg.Vendor.BaseURL, logger)
	dispatcher := service.NewDirectiveService(gateway, descriptors, sink, logger)

	server := httpserver.New(cfg.Server, dispatcher, logger)
	logger.Info("starting bridge", "vendor", cfg.Vendor.BaseURL)
	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err.Error())
		os.Exit(1)
	}
}
