package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdview/internal/logging"
	"github.com/yaklabco/mdview/internal/ui/ansi"
	"github.com/yaklabco/mdview/pkg/browse"
	"github.com/yaklabco/mdview/pkg/config"
	"github.com/yaklabco/mdview/pkg/markup"
)

func newBrowseCommand() *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:   "browse [dir]",
		Short: "Browse a documentation directory interactively",
		Long: `Open a documentation directory and navigate its topics from a prompt.

The home topic is shown first. Type a topic name to jump to it, or use
the commands below:

  :open <name|index>   show a topic by name or table index
  :link <n>            follow link [n] of the current topic
  :back, :forward      move through the visit history
  :home                return to the home topic
  :topics              print the topic table
  :links               list the current topic's links
  :reload              rescan the directory if sources changed
  :quit                leave the browser

Examples:
  mdview browse               Browse the current directory
  mdview browse docs/         Browse docs/
  mdview browse --home intro docs/  Start at the intro topic`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runBrowse(cmd, dir, &cfg)
		},
	}

	addTopicFlags(cmd, &cfg)
	cmd.Flags().IntVar(&cfg.HistoryMax, "history-max", 0, "visit history bound (0 = default)")
	cmd.Flags().StringVar(&cfg.ImagesDir, "images-dir", "", "directory image paths resolve against")
	cmd.Flags().IntVar(&cfg.IconSize, "icon-size", 0, "size for icon references without an explicit size")

	return cmd
}

// browseSession holds the wiring of one interactive browse run.
type browseSession struct {
	store   *browse.Store
	display *ansi.Display
	styles  *ansi.Styles
	out     io.Writer
	width   int
	dir     string
}

// OnNavigationStateChanged is part of browse.Listener.
func (s *browseSession) OnNavigationStateChanged(browse.NavState) {}

// OnTopicsChanged is part of browse.Listener.
func (s *browseSession) OnTopicsChanged() {}

// OnLinkActivated is part of browse.Listener. Links that do not name a topic
// end up here; a stream browser cannot open them, so it prints them instead.
func (s *browseSession) OnLinkActivated(url string) {
	fmt.Fprintln(s.out, s.styles.Status.Render("external link: "+url))
}

func runBrowse(cmd *cobra.Command, dir string, cliCfg *config.Config) error {
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

	imagesDir := cfg.ImagesDir
	if imagesDir == "" {
		imagesDir = dir
	}

	styles := commandStyles(cmd)
	out := cmd.OutOrStdout()
	session := &browseSession{
		styles: styles,
		out:    out,
		width:  terminalWidth(cfg),
		dir:    dir,
	}
	session.display = ansi.NewDisplay(out, styles, markup.Options{
		Images:   ansi.IconResolver{BaseDir: imagesDir},
		IconSize: cfg.IconSize,
	})
	session.store = browse.NewStore(session.display, session, opts)

	count, err := session.store.AddFiles(ctx, dir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}
	if count == 0 {
		return fmt.Errorf("no topics found in %s", dir)
	}

	logger.Debug("browse session started",
		logging.FieldDir, dir,
		logging.FieldTopicsTotal, count,
	)

	return session.loop(ctx, cmd.InOrStdin())
}

// loop reads commands until :quit or end of input. The prompt is only shown
// when stdin is a terminal, keeping piped input clean.
func (s *browseSession) loop(ctx context.Context, in io.Reader) error {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if interactive {
			fmt.Fprint(s.out, s.styles.Prompt.Render(s.prompt()))
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		quit, err := s.dispatch(ctx, line)
		if quit {
			return nil
		}
		if err != nil {
			fmt.Fprintln(s.out, s.styles.Failure.Render(err.Error()))
		}
	}

	return scanner.Err()
}

// prompt renders the navigation state into the prompt string.
func (s *browseSession) prompt() string {
	state := s.store.NavState()

	var marks strings.Builder
	if state.CanGoBack {
		marks.WriteString("<")
	}
	if state.CanGoForward {
		marks.WriteString(">")
	}
	if marks.Len() == 0 {
		return "mdview> "
	}
	return "mdview " + marks.String() + " "
}

func (s *browseSession) dispatch(ctx context.Context, line string) (quit bool, err error) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case ":quit", ":q", ":exit":
		return true, nil
	case ":open", ":o":
		if arg == "" {
			return false, errors.New("usage: :open <name|index>")
		}
		return false, s.open(arg)
	case ":link", ":l":
		return false, s.followLink(arg)
	case ":back", ":b":
		return false, s.store.Back()
	case ":forward", ":f":
		return false, s.store.Forward()
	case ":home", ":h":
		return false, s.store.Home()
	case ":topics", ":t":
		formatter := ansi.NewTableFormatter(s.styles, s.width)
		fmt.Fprint(s.out, formatter.FormatTopics(s.store))
		return false, nil
	case ":links":
		s.printLinks()
		return false, nil
	case ":reload", ":r":
		return false, s.reload(ctx)
	case ":help", ":?":
		s.printHelp()
		return false, nil
	default:
		if strings.HasPrefix(cmd, ":") {
			return false, fmt.Errorf("unknown command %s", cmd)
		}
		return false, s.open(line)
	}
}

// open navigates to a topic by name, or by table index when the argument is
// numeric and no topic carries the bare number as a name.
func (s *browseSession) open(arg string) error {
	if s.store.TopicIndexByName(arg) == browse.TopicNone {
		if i, err := strconv.Atoi(arg); err == nil && i >= 0 && i < s.store.Len() {
			return s.store.Navigate(0, i)
		}
	}
	return s.store.NavigateToTopic(arg)
}

func (s *browseSession) followLink(arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return errors.New("usage: :link <n>")
	}
	url, ok := s.display.LinkURL(markup.Handle(n))
	if !ok {
		return fmt.Errorf("no link [%d] on this topic", n)
	}
	return s.store.ActivateLink(url)
}

func (s *browseSession) printLinks() {
	handles := s.display.LinkHandles()
	if len(handles) == 0 {
		fmt.Fprintln(s.out, s.styles.Dim.Render("no links on this topic"))
		return
	}
	for _, h := range handles {
		url, _ := s.display.LinkURL(h)
		fmt.Fprintln(s.out, s.styles.Dim.Render(fmt.Sprintf("[%d] %s", h, url)))
	}
}

func (s *browseSession) reload(ctx context.Context) error {
	modified, err := s.store.SourcesModified(ctx)
	if err != nil {
		return fmt.Errorf("check sources: %w", err)
	}
	if !modified {
		fmt.Fprintln(s.out, s.styles.Status.Render("sources unchanged"))
		return nil
	}

	count, err := s.store.AddFiles(ctx, s.dir)
	if err != nil {
		return fmt.Errorf("rescan %s: %w", s.dir, err)
	}
	fmt.Fprintln(s.out, s.styles.Status.Render(fmt.Sprintf("reloaded %d topics", count)))
	return nil
}

func (s *browseSession) printHelp() {
	help := []string{
		":open <name|index>  show a topic",
		":link <n>           follow link [n]",
		":back / :forward    move through history",
		":home               return to the home topic",
		":topics             print the topic table",
		":links              list the current topic's links",
		":reload             rescan the directory",
		":quit               leave the browser",
	}
	for _, line := range help {
		fmt.Fprintln(s.out, s.styles.Dim.Render(line))
	}
}
