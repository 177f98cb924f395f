// Package docs embeds the user-facing documentation topics served by the
// `wsh topic` command.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var pages embed.FS

// Topic returns the content of one documentation topic. The wildcard "*"
// expands to every topic.
func Topic(name string) (string, error) {
	if name == "*" {
		return Topics(List()...)
	}
	content, err := pages.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics concatenates the named topics, wildcard included.
func Topics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		if name == "*" {
			for _, t := range List() {
				content, err := Topic(t)
				if err != nil {
					return "", err
				}
				b.WriteString(content)
				b.WriteString("\n")
			}
			continue
		}
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// List returns every topic name except the readme index itself, sorted.
func List() []string {
	entries, err := pages.ReadDir(".")
	if err != nil {
		return nil
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics
}
