package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/mdview/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	// Temp directory with no config files.
	tmpDir := t.TempDir()

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}

	if result.Config.HomeTopic != config.DefaultHomeTopic {
		t.Errorf("expected home topic %q, got %q", config.DefaultHomeTopic, result.Config.HomeTopic)
	}
	if result.Config.HistoryMax != config.DefaultHistoryMax {
		t.Errorf("expected history max %d, got %d", config.DefaultHistoryMax, result.Config.HistoryMax)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	configContent := `
home_topic: readme
history_max: 5
`
	configPath := filepath.Join(tmpDir, ".mdview.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	result, err := Load(ctx, LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.HomeTopic != "readme" {
		t.Errorf("expected home topic %q, got %q", "readme", result.Config.HomeTopic)
	}
	if result.Config.HistoryMax != 5 {
		t.Errorf("expected history max 5, got %d", result.Config.HistoryMax)
	}
	// Unset fields keep defaults.
	if result.Config.IconSize != config.DefaultIconSize {
		t.Errorf("expected icon size %d, got %d", config.DefaultIconSize, result.Config.IconSize)
	}

	found := false
	for _, p := range result.LoadedFrom {
		if p == configPath {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %q in LoadedFrom, got %v", configPath, result.LoadedFrom)
	}
}

func TestLoad_ExplicitConfigOverridesProject(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	projectPath := filepath.Join(tmpDir, ".mdview.yml")
	if err := os.WriteFile(projectPath, []byte("home_topic: project\nicon_size: 16\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	explicitPath := filepath.Join(tmpDir, "custom.yml")
	if err := os.WriteFile(explicitPath, []byte("home_topic: explicit\n"), 0o644); err != nil {
		t.Fatalf("write explicit config: %v", err)
	}

	ctx := context.Background()
	result, err := Load(ctx, LoadOptions{
		WorkingDir:         tmpDir,
		ExplicitPath:       explicitPath,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.HomeTopic != "explicit" {
		t.Errorf("expected home topic %q, got %q", "explicit", result.Config.HomeTopic)
	}
	// Fields the explicit file leaves unset still come from the project file.
	if result.Config.IconSize != 16 {
		t.Errorf("expected icon size 16, got %d", result.Config.IconSize)
	}
}

func TestLoad_CLIConfigHighestPrecedence(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ".mdview.yml"), []byte("home_topic: project\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	result, err := Load(ctx, LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
		CLIConfig:          &config.Config{HomeTopic: "cli", Color: config.ColorNever},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.HomeTopic != "cli" {
		t.Errorf("expected home topic %q, got %q", "cli", result.Config.HomeTopic)
	}
	if result.Config.Color != config.ColorNever {
		t.Errorf("expected color %q, got %q", config.ColorNever, result.Config.Color)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ".mdview.yml"), []byte("home_topic: project\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("MDVIEW_HOME_TOPIC", "from-env")
	t.Setenv("MDVIEW_HISTORY_MAX", "42")

	ctx := context.Background()
	result, err := Load(ctx, LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.HomeTopic != "from-env" {
		t.Errorf("expected home topic %q, got %q", "from-env", result.Config.HomeTopic)
	}
	if result.Config.HistoryMax != 42 {
		t.Errorf("expected history max 42, got %d", result.Config.HistoryMax)
	}
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("MDVIEW_ICON_SIZE", "huge")

	ctx := context.Background()
	_, err := Load(ctx, LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
	})
	if err == nil {
		t.Fatal("expected error for non-integer MDVIEW_ICON_SIZE")
	}
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ".mdview.yml"), []byte("file_pattern: '([unclosed'\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	_, err := Load(ctx, LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	})
	if err == nil {
		t.Fatal("expected error for uncompilable file_pattern")
	}
}

func TestFindProjectConfig_SearchesUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	configPath := filepath.Join(root, ".mdview.yml")
	if err := os.WriteFile(configPath, []byte("home_topic: up\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	found, err := FindProjectConfig(context.Background(), nested)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if found != configPath {
		t.Errorf("FindProjectConfig() = %q, want %q", found, configPath)
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	configPath := filepath.Join(root, ".mdview.yml")
	if err := os.WriteFile(configPath, []byte("home_topic: up\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	repo := filepath.Join(root, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, err := FindProjectConfig(context.Background(), repo)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if found != "" {
		t.Errorf("FindProjectConfig() = %q, want no match past VCS root", found)
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	mid := &config.Config{HomeTopic: "mid", IconSize: 48}
	top := &config.Config{HomeTopic: "top"}

	merged := MergeAll(base, mid, top)

	if merged.HomeTopic != "top" {
		t.Errorf("HomeTopic = %q, want %q", merged.HomeTopic, "top")
	}
	if merged.IconSize != 48 {
		t.Errorf("IconSize = %d, want 48", merged.IconSize)
	}
	if merged.FilePattern != config.DefaultFilePattern {
		t.Errorf("FilePattern = %q, want default", merged.FilePattern)
	}
}
