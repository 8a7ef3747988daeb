package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdview/internal/logging"
	"github.com/yaklabco/mdview/internal/ui/ansi"
	"github.com/yaklabco/mdview/pkg/config"
	"github.com/yaklabco/mdview/pkg/fsutil"
	"github.com/yaklabco/mdview/pkg/markup"
)

type renderFlags struct {
	showLinks bool
}

func newRenderCommand() *cobra.Command {
	var cfg config.Config
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a Markdown file to the terminal",
		Long: `Render a single Markdown file as styled terminal output.

Headers, emphasis, links, bullet lists and inline icons are rendered with
ANSI styling. Link destinations are collected and can be listed with --links.

Examples:
  mdview render README.md           Render a file
  mdview render --links guide.md    Render and list link destinations
  mdview render --color never doc.md  Render without ANSI styling`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], &cfg, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.showLinks, "links", false, "list link destinations after the rendered output")
	cmd.Flags().StringVar(&cfg.ImagesDir, "images-dir", "", "directory image paths resolve against")
	cmd.Flags().IntVar(&cfg.IconSize, "icon-size", 0, "size for icon references without an explicit size")

	return cmd
}

func runRender(cmd *cobra.Command, path string, cliCfg *config.Config, flags *renderFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	logger.Debug("rendering file", logging.FieldPath, info.Path)

	imagesDir := cfg.ImagesDir
	if imagesDir == "" {
		imagesDir = filepath.Dir(info.Path)
	}

	styles := commandStyles(cmd)
	sink := ansi.NewSink(styles)
	result := markup.Render(string(content), sink, markup.Options{
		Images:   ansi.IconResolver{BaseDir: imagesDir},
		IconSize: cfg.IconSize,
	})

	out := cmd.OutOrStdout()
	fmt.Fprint(out, sink.String())

	if flags.showLinks && len(result.Links) > 0 {
		handles := make([]markup.Handle, 0, len(result.Links))
		for h := range result.Links {
			handles = append(handles, h)
		}
		sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

		fmt.Fprintln(out)
		for _, h := range handles {
			fmt.Fprintf(out, "%s\n", styles.Dim.Render(fmt.Sprintf("[%d] %s", h, result.Links[h])))
		}
	}

	logger.Debug("render complete",
		logging.FieldLinks, len(result.Links),
		logging.FieldImages, len(result.Alts),
	)

	return nil
}
