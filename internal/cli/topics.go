package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdview/internal/logging"
	"github.com/yaklabco/mdview/internal/ui/ansi"
	"github.com/yaklabco/mdview/pkg/browse"
	"github.com/yaklabco/mdview/pkg/config"
)

func newTopicsCommand() *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:   "topics [dir]",
		Short: "List the topics found in a documentation directory",
		Long: `Scan a directory for topic files and print the topic table.

Files matching the configured file pattern become topics; the title is
extracted from the first top-level header, falling back to the file name.
Topics are listed in title order.

Examples:
  mdview topics                  List topics in the current directory
  mdview topics docs/            List topics under docs/
  mdview topics --home readme docs/  Mark readme as the home topic`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runTopics(cmd, dir, &cfg)
		},
	}

	addTopicFlags(cmd, &cfg)

	return cmd
}

func addTopicFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVar(&cfg.HomeTopic, "home", "", "name of the home topic")
	cmd.Flags().StringVar(&cfg.FilePattern, "file-pattern", "", "regexp selecting topic files (first group = name)")
	cmd.Flags().StringVar(&cfg.TitlePattern, "title-pattern", "", "regexp extracting titles (first group = title)")
	cmd.Flags().IntVar(&cfg.Width, "width", 0, "table width override (0 = detect)")
}

func runTopics(cmd *cobra.Command, dir string, cliCfg *config.Config) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	opts, err := storeOptions(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store := browse.NewStore(nil, nil, opts)

	count, err := store.AddFiles(ctx, dir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}

	logger.Debug("topics loaded", logging.FieldDir, dir, logging.FieldTopicsTotal, count)

	if count == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no topics found")
		return nil
	}

	formatter := ansi.NewTableFormatter(commandStyles(cmd), terminalWidth(cfg))
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTopics(store))

	return nil
}
