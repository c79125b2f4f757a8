// Package main provides the CLI entrypoint for convert-annotations.
//
// convert-annotations rewrites the category ids of the TiaoZhanCup COCO
// split files into the Objects365 taxonomy:
//   - Loads the mapping table (built-in, or COCO_PREP_MAPPING_FILE)
//   - Remaps every annotation of each split, dropping unmapped ones
//   - Writes converted_<split> next to each input
package main

import (
	"os"

	"coco-prep/internal/config"
	"coco-prep/internal/logger"
	"coco-prep/internal/mapping"
	"coco-prep/internal/remap"
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

	if cfg.MappingFile == "" {
		log.Debug("using the built-in mapping table")
	} else {
		log.Debug("loading mapping table from %s", cfg.MappingFile)
	}

	table, err := loadTable(cfg.MappingFile)
	if err != nil {
		log.Error("loading mapping table: %v", err)
		return 1
	}

	log.Info("mapping table %q: %d source classes, %d target classes",
		table.Name, len(table.Mapping), len(table.Taxonomy))
	log.Dump("mapping", table.Mapping)

	r, err := remap.New(table, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	if err := remap.Run(cfg.AnnotationsDir, cfg.Splits, r, log); err != nil {
		log.Error("%v", err)
		return 1
	}

	return 0
}

func loadTable(path string) (*mapping.Table, error) {
	if path == "" {
		return mapping.Default()
	}

	return mapping.LoadFile(path)
}
