package services

import (
	"errors"
	"regexp"
	"strings"
)

// CleanTags trims, deduplicates, and caps a free-text tag list.
func CleanTags(tags []string) []string {
	seen := make(map[string]bool)
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		value := strings.TrimSpace(tag)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		cleaned = append(cleaned, value)
		if len(cleaned) >= 12 {
			break
		}
	}
	return cleaned
}

func NormalizeRequired(value, message string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", errors.New(message)
	}
	return trimmed, nil
}

var whitespaceRe = regexp.MustCompile(`\s+`)

func CleanSearchTerm(term string) string {
	cleaned := strings.TrimSpace(term)
	return whitespaceRe.ReplaceAllString(cleaned, " ")
}
