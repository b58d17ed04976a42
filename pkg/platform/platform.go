// Package platform decides which libraries of a version descriptor apply to
// the running operating system.
package platform

import (
	"runtime"

	"github.com/rmcl/rmcl/pkg/manifest"
)

const (
	Windows = "windows"
	OSX     = "osx"
	Linux   = "linux"
)

// Name maps a GOOS value to the operating system name used by library rules.
// Values without a mapping are returned unchanged.
func Name(goos string) string {
	if goos == "darwin" {
		return OSX
	}
	return goos
}

// Current returns the rule name of the running operating system.
func Current() string {
	return Name(runtime.GOOS)
}

// Filter evaluates library rules against a fixed operating system name.
type Filter struct {
	OS string
}

// NewFilter returns a filter for the running operating system.
func NewFilter() Filter {
	return Filter{OS: Current()}
}

// Allowed reports whether lib applies to f.OS.
//
// A library without rules is always allowed. Otherwise evaluation starts from
// deny and every applying rule overrides the result with its own action, so
// the last applying rule wins. A rule applies when it has no OS constraint or
// names f.OS. Unknown actions count as disallow.
func (f Filter) Allowed(lib manifest.Library) bool {
	if len(lib.Rules) == 0 {
		return true
	}

	allowed := false
	for _, rule := range lib.Rules {
		if rule.OS != nil && rule.OS.Name != f.OS {
			continue
		}
		allowed = rule.Action == manifest.Allow
	}
	return allowed
}

// Libraries returns the libraries of desc allowed by f, in declared order.
func (f Filter) Libraries(desc *manifest.Descriptor) []manifest.Library {
	var libs []manifest.Library
	for _, lib := range desc.Libraries {
		if f.Allowed(lib) {
			libs = append(libs, lib)
		}
	}
	return libs
}
