// Package htmlsanitize provides HTML sanitization for admin-entered rich text
// content (the about description and project detail descriptions). It uses
// bluemonday to strip dangerous HTML while preserving safe formatting.
package htmlsanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared sanitization policy, creating it on first use.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		// UGC policy covers the formatting the dashboard editor emits.
		policy = bluemonday.UGCPolicy()

		// Common inline formatting the editor also produces.
		policy.AllowElements("u", "s", "sub", "sup", "mark")
	})
	return policy
}

// Sanitize cleans an HTML fragment, removing scripts, event handlers, and
// other dangerous content. The result is safe to store and serve back to
// the frontend.
func Sanitize(html string) string {
	return strings.TrimSpace(getPolicy().Sanitize(html))
}

// SanitizeAll cleans a slice of HTML fragments in place and returns it.
func SanitizeAll(fragments []string) []string {
	for i, f := range fragments {
		fragments[i] = Sanitize(f)
	}
	return fragments
}
