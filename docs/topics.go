// Package docs embeds the user documentation topics shown by the
// command-line tool.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var topicFS embed.FS

// GetTopic returns the markdown content of one documentation topic.
// The special topic "*" expands to all topics concatenated.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		return GetTopics("*")
	}
	content, err := topicFS.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates the content of several topics. A "*" entry
// expands to every available topic.
func GetTopics(topics ...string) (string, error) {
	var expanded []string
	for _, topic := range topics {
		if topic != "*" {
			expanded = append(expanded, topic)
			continue
		}
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		expanded = append(expanded, all...)
	}

	var b strings.Builder
	for _, topic := range expanded {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics lists the available topic names, sorted. The readme is
// the table of contents and is not a topic itself.
func GetAllTopics() ([]string, error) {
	entries, err := fs.Glob(topicFS, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e, ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	slices.Sort(topics)
	return topics, nil
}
