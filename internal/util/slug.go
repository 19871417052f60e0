package util

import "github.com/goliatone/go-slug"

// Slugify lowercases value and collapses runs of non-alphanumeric characters
// into single hyphens, trimming hyphens at both ends. The transform is
// idempotent: Slugify(Slugify(s)) == Slugify(s). Values with no usable
// characters yield an empty string.
func Slugify(value string) string {
	normalized, err := slug.Normalize(value)
	if err != nil {
		return ""
	}
	return normalized
}

// IsSlug reports whether value is already in slug form.
func IsSlug(value string) bool {
	return value != "" && Slugify(value) == value
}
