package classify

import (
	"reflect"
	"testing"
)

func TestURLs(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain http", "Server on http://localhost:3000", []string{"http://localhost:3000"}},
		{"https", "Open HTTPS://localhost:8443 now", []string{"https://localhost:8443"}},
		{"loopback ip", "bound to http://127.0.0.1:9000", []string{"http://127.0.0.1:9000"}},
		{"bare host port", "listening at localhost:5173", []string{"localhost:5173"}},
		{"bare https ip unmatched", "https://127.0.0.1:9000 is not a pattern we track", nil},
		{"no url", "compiling 42 modules", nil},
		{"two distinct", "http://localhost:3000 and localhost:3001", []string{"http://localhost:3000", "localhost:3001"}},
		{"scheme and bare collapse", "Server on http://localhost:3000 and LOCALHOST:3000", []string{"http://localhost:3000"}},
		{"case folded output", "Ready on HTTP://LOCALHOST:4000", []string{"http://localhost:4000"}},
		{"exact repeat", "http://localhost:3000 http://localhost:3000", []string{"http://localhost:3000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := URLs(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("URLs(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"http://localhost:3000", "localhost:3000"},
		{"https://localhost:3000", "localhost:3000"},
		{"LOCALHOST:3000", "localhost:3000"},
		{"http://127.0.0.1:9000", "127.0.0.1:9000"},
	}
	for _, tt := range tests {
		if got := Key(tt.url); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestIsError(t *testing.T) {
	errLines := []string{
		"Error: something broke",
		"build FAILED after 3s",
		"total failure",
		"Unhandled exception in worker",
		"FATAL: out of memory",
		"cannot open file",
		"unable to resolve dependency",
		"module not found",
		"ENOENT: no such file",
		"EACCES: permission denied",
		"warn: deprecated API",
		"Warning: large bundle",
	}
	for _, line := range errLines {
		if !IsError(line) {
			t.Errorf("IsError(%q) = false, want true", line)
		}
	}

	cleanLines := []string{
		"Build completed successfully",
		"compiling 42 modules",
		"",
	}
	for _, line := range cleanLines {
		if IsError(line) {
			t.Errorf("IsError(%q) = true, want false", line)
		}
	}
}

func TestIsImportant(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"ready in 431ms", true},
		{"Listening on port 3000", true},
		{"server started", true},
		{"App running on port 8080", true},
		{"Available on all interfaces", true},
		{"Local:   http://localhost:5173/", true},
		{"Server running at :3000", true},
		{"Error: nope", true},                // error lines always surface
		{"see http://localhost:3000", true},  // URL lines always surface
		{"compiling 42 modules", false},
		{"webpack progress 63%", false},
	}
	for _, tt := range tests {
		if got := IsImportant(tt.line); got != tt.want {
			t.Errorf("IsImportant(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestClassifyIdempotent(t *testing.T) {
	line := "WARN ready on http://localhost:3000 and localhost:3001"
	first := URLs(line)
	second := URLs(line)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("URLs not idempotent: %v then %v", first, second)
	}
	if IsError(line) != IsError(line) || IsImportant(line) != IsImportant(line) {
		t.Error("classification changed between identical calls")
	}
}
