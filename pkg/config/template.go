package config

// GenerateTemplate creates a commented configuration file template with the
// defaults spelled out.
func GenerateTemplate() []byte {
	return []byte(`# mdview configuration
# See: https://github.com/yaklabco/mdview

# Topic shown on startup and via the home action.
home_topic: README

# Regexp selecting topic files; the first capture group names the topic.
file_pattern: '^(.+)\.(?:md|markdown)$'

# Regexp extracting the topic title from content (first capture group).
title_pattern: '(?m)^ {0,3}# (.+)$'

# Maximum number of entries kept in the navigation history.
history_max: 10

# Directory image paths resolve against (empty = topic directory).
# images_dir: ""

# Size used for icon references that carry no explicit size.
icon_size: 24
`)
}
