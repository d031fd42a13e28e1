package walker

import (
	"path/filepath"
	"strings"
)

// Kind is the format of a documentation page.
type Kind string

const (
	KindUnknown  Kind = ""
	KindHTML     Kind = "html"
	KindMarkdown Kind = "markdown"
)

var extensionToKind = map[string]Kind{
	".html":     KindHTML,
	".htm":      KindHTML,
	".md":       KindMarkdown,
	".markdown": KindMarkdown,
}

// DetectKind returns the page format for a filename based on its extension.
func DetectKind(name string) Kind {
	return extensionToKind[strings.ToLower(filepath.Ext(name))]
}
