// Package main provides the CLI entrypoint for generate-test-json.
//
// generate-test-json builds annotations/test.json for the TiaoZhanCup test
// set from the YOLO label files of the last image folders.
package main

import (
	"os"

	"coco-prep/internal/assemble"
	"coco-prep/internal/config"
	"coco-prep/internal/dataset"
	"coco-prep/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		logger.NewWriter(os.Stdout, os.Stderr, false).Error("loading config: %v", err)
		return 1
	}

	log, err := logger.New(cfg)
	if err != nil {
		logger.NewWriter(os.Stdout, os.Stderr, false).Error("creating logger: %v", err)
		return 1
	}
	defer log.Close()

	log.Dump("config", cfg)

	opts := assemble.DefaultOptions()
	opts.FolderCount = cfg.FolderCount

	log.Debug("dataset root %s, last %d folders", cfg.DatasetRoot, opts.FolderCount)

	rep, err := assemble.Run(dataset.Layout{Root: cfg.DatasetRoot}, opts, log)
	if err != nil {
		log.Error("generating %s: %v", assemble.OutputName, err)
		return 1
	}

	log.Dump("report", rep)

	return 0
}
