package ui

import (
	"strings"

	"github.com/utkarsh5026/gocaf/pkg/objects"
)

// KindStyle returns the render style for an object kind.
func KindStyle(kind objects.ObjectKind) func(string) string {
	switch kind {
	case objects.BlobKind:
		return func(s string) string { return BlobStyle.Render(s) }
	case objects.TreeKind:
		return func(s string) string { return TreeStyle.Render(s) }
	case objects.CommitKind:
		return func(s string) string { return CommitStyle.Render(s) }
	case objects.TagKind:
		return func(s string) string { return TagStyle.Render(s) }
	default:
		return func(s string) string { return s }
	}
}

// FormatDigest renders a digest with its kind's color.
func FormatDigest(kind objects.ObjectKind, digest objects.Digest) string {
	return KindStyle(kind)(digest.String())
}

// SuccessMessage creates a success message with a checkmark icon
func SuccessMessage(message string, details ...string) string {
	var parts []string
	parts = append(parts, Green(IconCheckmark), Green(message))

	for _, detail := range details {
		parts = append(parts, Blue(detail))
	}

	return strings.Join(parts, " ")
}

// ErrorMessage formats an error message in red
func ErrorMessage(message string) string {
	return Red(message)
}
