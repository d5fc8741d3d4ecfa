package renderer

import (
	"strings"

	"ceremony/internal/catalog"
)

// FontStylesheetURL builds the Google Fonts stylesheet URL loading every
// font family a template declares. Returns "" when the template declares
// no fonts.
func FontStylesheetURL(cfg *catalog.TemplateConfig) string {
	if len(cfg.Fonts) == 0 {
		return ""
	}
	return "https://fonts.googleapis.com/css2?family=" +
		strings.Join(cfg.Fonts, "&family=") + "&display=swap"
}
