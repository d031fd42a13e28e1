package links

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ziadkadry99/fragredirect/internal/redirect"
	"github.com/ziadkadry99/fragredirect/internal/walker"
)

// Finding is one legacy anchor and its new home.
type Finding struct {
	File        string `json:"file"`        // Page containing the link, relative to the root.
	Link        string `json:"link"`        // Link as written.
	Target      string `json:"target"`      // Site path of the new page, with fragment when kept.
	Replacement string `json:"replacement"` // Link to write instead, relative when the original was.
	Exists      bool   `json:"exists"`      // Whether the target page is present under the root.
}

// Scan reads every file and reports the links that the redirector would
// rewrite. Links without a fragment, external links and anything the
// redirector leaves alone are skipped.
func Scan(root string, files []walker.FileInfo) ([]Finding, error) {
	var findings []Finding
	for _, f := range files {
		src, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("links: read %s: %w", f.RelPath, err)
		}
		hrefs, err := Extract(f.Kind, src)
		if err != nil {
			return nil, fmt.Errorf("links: %s: %w", f.RelPath, err)
		}
		for _, href := range hrefs {
			if finding, ok := Check(root, f.RelPath, href); ok {
				findings = append(findings, finding)
			}
		}
	}
	return findings, nil
}

// Check resolves a single link found in the page at relPath.
func Check(root, relPath, href string) (Finding, bool) {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil || u.Scheme != "" || u.Host != "" || u.Fragment == "" {
		return Finding{}, false
	}

	pageDir := path.Dir("/" + filepath.ToSlash(relPath))
	var sitePath string
	switch {
	case u.Path == "":
		sitePath = "/" + filepath.ToSlash(relPath)
	case strings.HasPrefix(u.Path, "/"):
		sitePath = path.Clean(u.Path)
	default:
		sitePath = path.Join(pageDir, u.Path)
	}

	target, ok := redirect.Resolve(redirect.Location{Path: sitePath, Fragment: u.Fragment})
	if !ok {
		return Finding{}, false
	}

	replacement := redirect.Target{Path: target.Path, Fragment: target.Fragment}
	if !strings.HasPrefix(u.Path, "/") {
		if rel, err := filepath.Rel(pageDir, target.Path); err == nil {
			replacement.Path = filepath.ToSlash(rel)
		}
	}

	return Finding{
		File:        filepath.ToSlash(relPath),
		Link:        href,
		Target:      target.String(),
		Replacement: replacement.String(),
		Exists:      PageExists(root, target.Path),
	}, true
}

// PageExists reports whether the site path names a regular file under root.
func PageExists(root, sitePath string) bool {
	rel := filepath.FromSlash(strings.TrimPrefix(path.Clean("/"+sitePath), "/"))
	info, err := os.Stat(filepath.Join(root, rel))
	return err == nil && info.Mode().IsRegular()
}
