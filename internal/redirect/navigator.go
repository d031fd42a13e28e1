package redirect

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
)

// LocationProvider supplies the location the redirector inspects.
type LocationProvider interface {
	Location() Location
}

// Navigator replaces the current location with target. Implementations must
// not add a history entry.
type Navigator interface {
	Replace(target string) error
}

// StaticLocation is a LocationProvider that always returns itself.
type StaticLocation Location

func (s StaticLocation) Location() Location { return Location(s) }

// URLLocation provides the path and fragment of a parsed URL.
type URLLocation struct {
	URL *url.URL
}

func (u URLLocation) Location() Location {
	if u.URL == nil {
		return Location{}
	}
	return Location{Path: u.URL.Path, Fragment: u.URL.Fragment}
}

// RecordingNavigator remembers every target it is asked to navigate to.
type RecordingNavigator struct {
	mu      sync.Mutex
	targets []string
}

func (n *RecordingNavigator) Replace(target string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.targets = append(n.targets, target)
	return nil
}

// Targets returns a copy of the recorded targets in call order.
func (n *RecordingNavigator) Targets() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.targets))
	copy(out, n.targets)
	return out
}

// WriterNavigator prints each target on its own line. When Base is set the
// target is resolved against it first, the way a browser would.
type WriterNavigator struct {
	W    io.Writer
	Base *url.URL
}

func (n WriterNavigator) Replace(target string) error {
	if n.Base != nil {
		ref, err := url.Parse(target)
		if err != nil {
			return fmt.Errorf("parse target %q: %w", target, err)
		}
		target = n.Base.ResolveReference(ref).String()
	}
	_, err := fmt.Fprintln(n.W, target)
	return err
}

// HTTPNavigator answers an HTTP request with a 302 to the target.
type HTTPNavigator struct {
	W http.ResponseWriter
	R *http.Request
}

func (n HTTPNavigator) Replace(target string) error {
	http.Redirect(n.W, n.R, target, http.StatusFound)
	return nil
}

// Redirector wires a LocationProvider to a Navigator.
type Redirector struct {
	provider  LocationProvider
	navigator Navigator
}

// New creates a Redirector.
func New(provider LocationProvider, navigator Navigator) *Redirector {
	return &Redirector{provider: provider, navigator: navigator}
}

// Run navigates at most once. It returns false without error when the current
// location is not a legacy service anchor.
func (r *Redirector) Run() (bool, error) {
	target, ok := Resolve(r.provider.Location())
	if !ok {
		return false, nil
	}
	if err := r.navigator.Replace(target.String()); err != nil {
		return false, fmt.Errorf("redirect: navigate to %s: %w", target, err)
	}
	return true, nil
}
