package configloader

import "github.com/yaklabco/mdview/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// Scalar values overwrite base only when the override holds a non-zero value,
// so unset fields in a higher-precedence source never clobber lower ones.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.HomeTopic != "" {
		result.HomeTopic = override.HomeTopic
	}
	if override.FilePattern != "" {
		result.FilePattern = override.FilePattern
	}
	if override.TitlePattern != "" {
		result.TitlePattern = override.TitlePattern
	}
	if override.HistoryMax != 0 {
		result.HistoryMax = override.HistoryMax
	}
	if override.ImagesDir != "" {
		result.ImagesDir = override.ImagesDir
	}
	if override.IconSize != 0 {
		result.IconSize = override.IconSize
	}

	// CLI-only fields.
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Width != 0 {
		result.Width = override.Width
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
