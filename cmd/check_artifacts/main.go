package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"maternalrisk/artifacts"
	"maternalrisk/config"
	"maternalrisk/logging"
	"maternalrisk/risk"
)

// check_artifacts loads every configured artifact, runs the consistency
// checks and predicts the form defaults once per model.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(config.Locate(*configPath))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	bundle, err := artifacts.NewLoader(cfg.Artifacts, logger).Load()
	if err != nil {
		log.Fatalf("artifacts invalid: %v", err)
	}
	engine, err := bundle.Engine(risk.WithLogger(logger))
	if err != nil {
		log.Fatalf("artifacts invalid: %v", err)
	}

	fmt.Printf("scaler: %d features %v\n", bundle.Scaler.NumFeatures(), bundle.Scaler.FeatureNames())
	fmt.Printf("classes: %v\n", bundle.Encoder.Classes())

	cmp, err := engine.Compare(risk.DefaultInput())
	if err != nil {
		log.Fatalf("default prediction failed: %v", err)
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "model\ttype\tdefault prediction\tconfidence\t")
	for _, row := range cmp.Rows() {
		model, _ := bundle.Registry.Get(row.Model)
		fmt.Fprintf(tw, "%s\t%T\t%s\t%.2f%%\t\n", row.Model, model, row.Label, row.Confidence*100)
	}
	tw.Flush()
}
