// Package redirect rewrites legacy service-page anchors such as
// services/s3.html#S3.Client.delete_bucket into the per-member page layout
// services/s3/client/delete_bucket.html.
//
// Browsers never send the fragment to the server, so the decision is made
// from a Location supplied by a LocationProvider and carried out through a
// Navigator. Anything that does not look like a legacy anchor is left alone.
package redirect

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	// ServicesSegment is the directory that holds top-level service pages.
	ServicesSegment = "services"
	// ExceptionsSegment marks a fragment that points at a modeled exception.
	ExceptionsSegment = "exceptions"
	// PageExt is the extension of every generated page.
	PageExt = ".html"

	minFragmentItems = 3
	maxFragmentItems = 5
)

var fragmentItemRe = regexp.MustCompile(`(?i)^[a-z0-9_-]+$`)

// Location is the part of a browser location the redirector looks at.
type Location struct {
	Path     string // URL path, "/" delimited.
	Fragment string // Hash without the leading "#". May be empty.
}

// Target is the computed destination of a redirect.
type Target struct {
	Path     string // Always ends in PageExt.
	Fragment string // Empty when the original fragment is not carried over.
}

// String renders the target as path[#fragment].
func (t Target) String() string {
	if t.Fragment == "" {
		return t.Path
	}
	return t.Path + "#" + t.Fragment
}

// IsValidFragment reports whether every item of a split fragment is made of
// alphanumerics, hyphens and underscores, and whether there are between 3
// and 5 items.
func IsValidFragment(parts []string) bool {
	for _, p := range parts {
		if !fragmentItemRe.MatchString(p) {
			return false
		}
	}
	return len(parts) >= minFragmentItems && len(parts) <= maxFragmentItems
}

// IsValidServiceName reports whether a page's doc name matches the service
// class name taken from a fragment. Hyphens and case are ignored on both sides.
func IsValidServiceName(docName, className string) bool {
	return normalizeServiceName(docName) == normalizeServiceName(className)
}

func normalizeServiceName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "-", ""))
}

// Resolve computes where loc should be redirected. The boolean is false when
// the location is not a legacy service anchor; that is never an error.
func Resolve(loc Location) (Target, bool) {
	target, ok := resolve(loc)
	if !ok {
		return Target{}, false
	}
	// A target that would itself be redirected again is a loop.
	if _, again := resolve(Location{Path: target.Path, Fragment: target.Fragment}); again {
		return Target{}, false
	}
	return target, true
}

func resolve(loc Location) (Target, bool) {
	if loc.Fragment == "" {
		return Target{}, false
	}

	segments := strings.Split(loc.Path, "/")
	if len(segments) < 2 || segments[len(segments)-2] != ServicesSegment {
		return Target{}, false
	}

	docName := strings.Replace(segments[len(segments)-1], PageExt, "", 1)

	parts := strings.Split(loc.Fragment, ".")
	parts[0] = strings.ToLower(parts[0])
	if !IsValidFragment(parts) || !IsValidServiceName(docName, parts[0]) {
		return Target{}, false
	}

	parts[0] = docName
	parts[1] = strings.ToLower(parts[1])

	isException := parts[2] == ExceptionsSegment
	sliceLocation := 3
	if isException {
		sliceLocation = 4
	}

	// A bare Service.Kind.exceptions has only three items.
	n := min(sliceLocation, len(parts))

	dir := strings.Join(segments[:len(segments)-1], "/")
	target := Target{
		Path: dir + "/" + strings.Join(parts[:n], "/") + PageExt,
	}

	// Extra items name something inside the new page, so keep the anchor.
	if len(parts) > sliceLocation {
		target.Fragment = loc.Fragment
	}
	return target, true
}

// ResolveURL applies Resolve to a full URL. The returned URL keeps the scheme
// and host, drops the query and carries the fragment only when it is kept.
func ResolveURL(u *url.URL) (*url.URL, bool) {
	if u == nil {
		return nil, false
	}
	target, ok := Resolve(Location{Path: u.Path, Fragment: u.Fragment})
	if !ok {
		return nil, false
	}
	out := *u
	out.Path = target.Path
	out.RawPath = ""
	out.RawQuery = ""
	out.ForceQuery = false
	out.Fragment = target.Fragment
	out.RawFragment = ""
	return &out, true
}
