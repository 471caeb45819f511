package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/diwise/project-attributes/internal/pkg/application/exporter"
	"github.com/diwise/project-attributes/internal/pkg/infrastructure/database"
	"github.com/diwise/project-attributes/internal/pkg/infrastructure/router"
	"github.com/diwise/project-attributes/internal/pkg/presentation/api"
)

const serviceName string = "project-attributes"

func defaultFlags() FlagMap {
	return FlagMap{
		listenAddress: "", // listen on all ipv4 and ipv6 interfaces
		servicePort:   "8080",
		logFormat:     "json",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, flags[logFormat])
	defer cleanup()

	app, closeSink, err := initialize(ctx, flags)
	if err != nil {
		logger.Error("failed to initialize exporter", "err", err.Error())
		os.Exit(1)
	}
	defer closeSink()

	r := router.New(serviceName)
	api.RegisterHandlers(ctx, r, app)

	addr := flags[listenAddress] + ":" + flags[servicePort]
	logger.Info("starting to listen for connections", "addr", addr)

	err = http.ListenAndServe(addr, r)
	if err != nil {
		logger.Error("failed to listen for connections", "err", err.Error())
		os.Exit(1)
	}
}

func initialize(ctx context.Context, flags FlagMap) (exporter.Exporter, func(), error) {
	var profiles *exporter.Config
	var err error

	if flags[profilesPath] != "" {
		profiles, err = loadProfiles(flags[profilesPath])
		if err != nil {
			return nil, nil, err
		}
	}

	modeName := flags[exportMode]
	if modeName == "" && profiles != nil {
		modeName = profiles.Mode
	}

	mode, err := exporter.ParseMode(modeName)
	if err != nil {
		return nil, nil, err
	}

	cfg := database.LoadConfiguration(ctx)
	if !cfg.Enabled() {
		logging.GetFromContext(ctx).Info("no database configured, exported values will not be stored", "mode", mode)
		return exporter.New(mode, profiles, nil), func() {}, nil
	}

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.Initialize(ctx)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return exporter.New(mode, profiles, db), db.Close, nil
}

func loadProfiles(path string) (*exporter.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export profiles: %w", err)
	}
	defer f.Close()

	return exporter.LoadConfiguration(f)
}

func parseExternalConfig(ctx context.Context, flags FlagMap) (context.Context, FlagMap) {

	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])
	flags[exportMode] = envOrDef(ctx, "EXPORT_MODE", flags[exportMode])
	flags[profilesPath] = envOrDef(ctx, "EXPORT_PROFILES", flags[profilesPath])

	apply := func(f FlagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("profiles", "path to the export profiles (yaml)", apply(profilesPath))
	flag.Func("mode", "default export mode, lenient or strict", apply(exportMode))
	flag.Func("port", "port to listen on", apply(servicePort))
	flag.Parse()

	return ctx, flags
}
