package links

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/ziadkadry99/fragredirect/internal/redirect"
)

// URLResult is the outcome of checking one legacy URL.
type URLResult struct {
	URL        string `json:"url"`
	Redirected bool   `json:"redirected"`
	Target     string `json:"target,omitempty"`
	Exists     bool   `json:"exists"`
}

// ReadURLList reads one URL per line. Blank lines and lines starting with
// "#" are skipped.
func ReadURLList(r io.Reader) ([]string, error) {
	var urls []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("links: read url list: %w", err)
	}
	return urls, nil
}

// CheckURL resolves a legacy URL and, when it redirects, reports whether the
// target page exists under docsDir. stripPrefix is removed from the target
// path first, so "/en/latest" can map a hosted URL onto a local build.
func CheckURL(docsDir, stripPrefix, raw string) (URLResult, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return URLResult{}, fmt.Errorf("links: parse %q: %w", raw, err)
	}

	res := URLResult{URL: raw}
	target, ok := redirect.ResolveURL(u)
	if !ok {
		return res, nil
	}

	res.Redirected = true
	res.Target = target.String()

	sitePath := target.Path
	if stripPrefix != "" {
		prefix := "/" + strings.Trim(stripPrefix, "/")
		if sitePath == prefix || strings.HasPrefix(sitePath, prefix+"/") {
			sitePath = strings.TrimPrefix(sitePath, prefix)
		}
	}
	res.Exists = PageExists(docsDir, sitePath)
	return res, nil
}
