package config

import (
	"fmt"
	"strings"
)

// Full dictionary export formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

func NormalizeExportFormat(raw string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(raw))
	if format == "" {
		format = FormatText
	}
	switch format {
	case FormatText, FormatYAML:
		return format, nil
	case "txt":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf(
			"invalid export format %q (expected %s|%s)",
			raw,
			FormatText,
			FormatYAML,
		)
	}
}
