package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/mdview/pkg/config"
)

// envVarPrefix is the prefix for all mdview environment variables.
const envVarPrefix = "MDVIEW_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeInt
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"HOME_TOPIC":    {field: "home_topic", typ: envTypeString},
	"FILE_PATTERN":  {field: "file_pattern", typ: envTypeString},
	"TITLE_PATTERN": {field: "title_pattern", typ: envTypeString},
	"HISTORY_MAX":   {field: "history_max", typ: envTypeInt},
	"IMAGES_DIR":    {field: "images_dir", typ: envTypeString},
	"ICON_SIZE":     {field: "icon_size", typ: envTypeInt},
	"COLOR":         {field: "color", typ: envTypeString},
	"WIDTH":         {field: "width", typ: envTypeInt},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with MDVIEW_ (e.g., MDVIEW_HOME_TOPIC).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "home_topic":
		cfg.HomeTopic = value
	case "file_pattern":
		cfg.FilePattern = value
	case "title_pattern":
		cfg.TitlePattern = value
	case "images_dir":
		cfg.ImagesDir = value
	case "color":
		cfg.Color = config.ColorMode(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "history_max":
		cfg.HistoryMax = value
	case "icon_size":
		cfg.IconSize = value
	case "width":
		cfg.Width = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"MDVIEW_HOME_TOPIC":    "Topic shown on startup and via home",
		"MDVIEW_FILE_PATTERN":  "Regexp selecting topic files (first group names the topic)",
		"MDVIEW_TITLE_PATTERN": "Regexp extracting topic titles (first group)",
		"MDVIEW_HISTORY_MAX":   "Maximum navigation history entries",
		"MDVIEW_IMAGES_DIR":    "Directory image paths resolve against",
		"MDVIEW_ICON_SIZE":     "Default size for icon references",
		"MDVIEW_COLOR":         "Color mode: auto, always, or never",
		"MDVIEW_WIDTH":         "Terminal width override (0 = detect)",
	}
}
