package source

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ParseTags splits comma-separated tag text. Fragments are trimmed and empty
// ones dropped; duplicates and order are kept as typed.
func ParseTags(text string) []string {
	tags := []string{}
	for _, part := range strings.Split(text, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// UniqueTags returns the distinct tags used across sources in collation order.
func UniqueTags(sources []Source) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, src := range sources {
		for _, tag := range src.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	collate.New(language.Und).SortStrings(tags)
	return tags
}
