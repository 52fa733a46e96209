package render

import (
	"strings"

	"github.com/fatih/color"
)

// FormatSuccess formats a success message with the success marker
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✓ %s", message)
}

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Capitalize first letter
	if len(message) > 0 {
		message = strings.ToUpper(message[:1]) + message[1:]
	}
	return color.New(color.FgRed).Sprintf("❌ %s", message)
}
