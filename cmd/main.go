package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"maternalrisk/artifacts"
	"maternalrisk/config"
	"maternalrisk/logging"
	"maternalrisk/risk"
	"maternalrisk/shell"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	model := flag.String("model", "", "show a single model instead of the comparison")
	flag.Parse()

	// 1. Load config
	cfg, err := config.Load(config.Locate(*configPath))
	if err != nil {
		fatalf("failed to load config: %v", err)
	}

	// 2. Logger
	logger, err := logging.New(cfg.Log)
	if err != nil {
		fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	// 3. Artifacts; nothing is accepted from the operator until they load
	bundle, err := artifacts.NewLoader(cfg.Artifacts, logger).Load()
	if err != nil {
		fatalf("%v", err)
	}
	engine, err := bundle.Engine(risk.WithLogger(logger), risk.WithCacheSize(cfg.Engine.CacheSize))
	if err != nil {
		fatalf("failed to build engine: %v", err)
	}

	selected := cfg.UI.Model
	if *model != "" {
		selected = *model
	}
	if selected != "" {
		if _, ok := bundle.Registry.Get(selected); !ok {
			fatalf("unknown model %q, registered: %v", selected, bundle.Registry.Names())
		}
	}

	// 4. Form loop
	sh := shell.New(os.Stdin, os.Stdout, engine, shell.Options{
		Language: cfg.UI.Language,
		Model:    selected,
		Logger:   logger,
	})
	if err := sh.Run(); err != nil {
		logger.Error("input failed", zap.Error(err))
		fatalf("input failed: %v", err)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
