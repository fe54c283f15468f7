package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// DefaultTemplateName is the embedded template used when no override is set.
const DefaultTemplateName = "templates/signup.html"

// TemplatesFS exposes the embedded templates so callers can copy and adapt
// them.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

func defaultTemplate() (string, error) {
	data, err := fs.ReadFile(embeddedTemplates, DefaultTemplateName)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
