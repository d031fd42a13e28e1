// Package links finds legacy service anchors in documentation pages and
// works out where they point after the per-member page split.
package links

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/fragredirect/internal/walker"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Extract returns the link destinations found in a page, in document order.
func Extract(kind walker.Kind, src []byte) ([]string, error) {
	switch kind {
	case walker.KindHTML:
		return extractHTML(src)
	case walker.KindMarkdown:
		return extractMarkdown(src)
	default:
		return nil, fmt.Errorf("links: unsupported page kind %q", kind)
	}
}

func extractMarkdown(src []byte) ([]string, error) {
	doc := markdown.Parser().Parse(text.NewReader(src))

	var out []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch l := n.(type) {
		case *ast.Link:
			out = append(out, string(l.Destination))
		case *ast.AutoLink:
			out = append(out, string(l.URL(src)))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("links: walk markdown: %w", err)
	}
	return out, nil
}

func extractHTML(src []byte) ([]string, error) {
	z := html.NewTokenizer(bytes.NewReader(src))

	var out []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("links: tokenize html: %w", err)
			}
			return out, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if tag := string(name); tag != "a" && tag != "link" && tag != "area" {
				continue
			}
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if string(key) == "href" {
					out = append(out, string(val))
				}
			}
		}
	}
}
