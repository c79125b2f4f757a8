package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvFile is loaded, when present, before the environment is read.
// Variables already set in the process environment win.
const EnvFile = ".env"

type Config struct {
	AnnotationsDir string   // directory holding the split files to remap
	Splits         []string // split files converted by the remapper
	MappingFile    string   // YAML mapping table; empty selects the built-in one
	DatasetRoot    string   // root with images/, labels/ and annotations/
	FolderCount    int      // how many trailing image folders go into test.json
	LogDirectory   string   // per-level log files; empty logs to the console only
	Debug          bool
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &Config{
		AnnotationsDir: getEnv("COCO_PREP_ANNOTATIONS_DIR", filepath.Join("data", "TiaoZhanCup", "annotations")),
		Splits:         getEnvAsList("COCO_PREP_SPLITS", []string{"train.json", "val.json", "test.json"}),
		MappingFile:    getEnv("COCO_PREP_MAPPING_FILE", ""),
		DatasetRoot:    getEnv("COCO_PREP_DATASET_ROOT", filepath.Join("data", "TiaoZhanCup")),
		FolderCount:    getEnvAsInt("COCO_PREP_FOLDER_COUNT", 6),
		LogDirectory:   getEnv("COCO_PREP_LOG_DIR", ""),
		Debug:          getEnvAsBool("COCO_PREP_DEBUG", false),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}

	if len(list) == 0 {
		return defaultValue
	}
	return list
}
