package utils

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Allow alphanumeric, underscore, hyphen, dot - export file names
	validFileNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	// Detect potentially dangerous characters - more focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateFileName validates a path segment naming a downloadable file.
func ValidateFileName(name string) error {
	if name == "" {
		return errors.New("file name cannot be empty")
	}

	if len(name) > 100 {
		return errors.New("file name too long (max 100 characters)")
	}

	if !validFileNamePattern.MatchString(name) || strings.Contains(name, "..") {
		return errors.New("file name contains invalid characters")
	}

	return nil
}

// ValidateSeriesName validates a "Series Name" supplied by a client. World
// Bank names contain commas, parentheses and percent signs, so only markup
// and comment sequences are rejected.
func ValidateSeriesName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("series cannot be empty")
	}

	if len(name) > 200 {
		return errors.New("series too long (max 200 characters)")
	}

	if dangerousPattern.MatchString(name) {
		return errors.New("series contains invalid characters")
	}

	return nil
}

// ValidateYear checks that year is one of the available years.
func ValidateYear(year int, available []int) error {
	if len(available) == 0 {
		return errors.New("no years available")
	}
	if !slices.Contains(available, year) {
		return fmt.Errorf("year must be between %d and %d and present in the dataset", available[0], available[len(available)-1])
	}
	return nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	// Remove HTML tags
	sanitized := htmlTagPattern.ReplaceAllString(input, "")

	// Trim whitespace
	sanitized = strings.TrimSpace(sanitized)

	return sanitized
}

// ValidateAndSanitizeSeriesName validates and sanitizes a series name
func ValidateAndSanitizeSeriesName(name string) (string, error) {
	if err := ValidateSeriesName(name); err != nil {
		return "", err
	}

	return SanitizeInput(name), nil
}
