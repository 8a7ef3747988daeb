package browse

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/yaklabco/mdview/pkg/fsutil"
)

// Default patterns for file ingestion.
var (
	// DefaultFilePattern accepts markdown files; the base name without
	// extension becomes the topic name.
	DefaultFilePattern = regexp.MustCompile(`^(.+)\.(?:md|markdown)$`)

	// DefaultTitlePattern extracts the first level-one heading as the
	// topic title.
	DefaultTitlePattern = regexp.MustCompile(`(?m)^ {0,3}# (.+)$`)
)

// AddFiles replaces the store's topic set with the matching files of dir.
// Files whose name matches the configured file pattern are read and
// registered; the pattern's first capture group names the topic. The title
// comes from the configured title pattern's first capture group, and stays
// empty when the content has no match. Unreadable files and subdirectories
// are skipped.
//
// Returns the number of topics registered.
func (s *Store) AddFiles(ctx context.Context, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read topic directory %s: %w", dir, err)
	}

	s.Reset()

	added := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := s.opts.FilePattern.FindStringSubmatch(entry.Name())
		if m == nil || len(m) < 2 {
			continue
		}
		name := m[1]

		content, info, err := fsutil.ReadFile(ctx, filepath.Join(dir, entry.Name()))
		if err != nil {
			if ctx.Err() != nil {
				return added, fmt.Errorf("read topic %s: %w", entry.Name(), err)
			}
			continue
		}

		var title string
		if tm := s.opts.TitlePattern.FindSubmatch(content); len(tm) > 1 {
			title = string(tm[1])
		}

		if err := s.AddTopic(Topic{Name: name, Title: title, Content: string(content)}); err != nil {
			return added, err
		}
		s.sources = append(s.sources, info)
		added++
	}
	return added, nil
}

// SourcesModified reports whether any file read by the last AddFiles call
// has since changed on disk. Deleted files count as modified.
func (s *Store) SourcesModified(ctx context.Context) (bool, error) {
	for _, info := range s.sources {
		modified, err := fsutil.CheckModifiedQuick(ctx, info)
		if err != nil {
			return false, fmt.Errorf("check topic source %s: %w", info.Path, err)
		}
		if modified {
			return true, nil
		}
	}
	return false, nil
}
