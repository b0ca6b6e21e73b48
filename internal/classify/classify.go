// Package classify contains the pure line predicates used to filter and
// tag command output: service-URL extraction, error detection, and the
// "worth surfacing" heuristic. Everything here is stateless.
package classify

import (
	"regexp"
	"strings"
)

// Bare localhost:PORT must come last: Go's alternation is leftmost-first,
// so a full http(s) prefix at the same position wins and the host:port
// inside it is never re-matched.
var urlPattern = regexp.MustCompile(`(?i)https?://localhost:\d+|http://127\.0\.0\.1:\d+|localhost:\d+`)

// URLs returns the service URLs found in line, lowercased, deduplicated by
// Key, in first-seen order. Nil when the line contains none.
func URLs(line string) []string {
	matches := urlPattern.FindAllString(line, -1)
	if matches == nil {
		return nil
	}
	var out []string
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		m = strings.ToLower(m)
		k := Key(m)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, m)
	}
	return out
}

// Key returns the deduplication key for a discovered URL: lowercased with
// any http/https scheme stripped, so the same host:port never appears
// twice under different spellings.
func Key(url string) string {
	s := strings.ToLower(url)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	return s
}

var errorNeedles = []string{
	"error", "failed", "failure", "exception", "fatal", "cannot",
	"unable to", "not found", "enoent", "eacces", "warn", "warning",
}

// IsError reports whether the line looks like an error or warning.
func IsError(line string) bool {
	l := strings.ToLower(line)
	for _, needle := range errorNeedles {
		if strings.Contains(l, needle) {
			return true
		}
	}
	return false
}

var importantNeedles = []string{
	"ready", "listening", "started", "running on", "available on",
	"local:", "server running",
}

// IsImportant reports whether the line should be surfaced in non-verbose
// mode: it carries a URL, reads like an error, or announces server status.
func IsImportant(line string) bool {
	if len(URLs(line)) > 0 || IsError(line) {
		return true
	}
	l := strings.ToLower(line)
	for _, needle := range importantNeedles {
		if strings.Contains(l, needle) {
			return true
		}
	}
	return false
}
