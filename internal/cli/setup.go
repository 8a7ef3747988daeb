package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdview/internal/configloader"
	"github.com/yaklabco/mdview/internal/ui/ansi"
	"github.com/yaklabco/mdview/pkg/browse"
	"github.com/yaklabco/mdview/pkg/config"
)

// loadConfig resolves the final configuration for a command invocation,
// merging config files, environment variables and the CLI-provided overrides.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	return loadResult.Config, nil
}

// commandStyles builds the style set for a command, honoring the persistent
// --color flag against the command's output writer.
func commandStyles(cmd *cobra.Command) *ansi.Styles {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	return ansi.NewStyles(ansi.IsColorEnabled(colorMode, cmd.OutOrStdout()))
}

// storeOptions translates the resolved configuration into store options,
// compiling the topic file and title patterns.
func storeOptions(cfg *config.Config) (browse.Options, error) {
	filePat, titlePat, err := cfg.CompilePatterns()
	if err != nil {
		return browse.Options{}, err
	}

	return browse.Options{
		HomeTopic:    cfg.HomeTopic,
		HistoryMax:   cfg.HistoryMax,
		FilePattern:  filePat,
		TitlePattern: titlePat,
	}, nil
}

// terminalWidth returns the configured width override, or the detected width
// of stdout when attached to a terminal. Zero means "let the caller decide".
func terminalWidth(cfg *config.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}

	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}

	return 0
}
