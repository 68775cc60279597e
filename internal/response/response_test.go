package response

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestBuildExactLayout(t *testing.T) {
	got := Build("200 OK", []byte("<html></html>"))

	want := "HTTP/1.1 200 OK\r\n" +
		"Content-Type: text/html; charset=utf-8\r\n" +
		"Content-Length: 13\r\n" +
		"Connection: close\r\n" +
		"\r\n" +
		"<html></html>"

	if string(got) != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func TestBuildHeaderOrder(t *testing.T) {
	got := string(Build("404 Not Found", []byte("x")))

	headerBlock, _, found := strings.Cut(got, "\r\n\r\n")
	if !found {
		t.Fatal("response must contain the \\r\\n\\r\\n header terminator")
	}

	lines := strings.Split(headerBlock, "\r\n")
	want := []string{
		"HTTP/1.1 404 Not Found",
		"Content-Type: text/html; charset=utf-8",
		"Content-Length: 1",
		"Connection: close",
	}

	if len(lines) != len(want) {
		t.Fatalf("header block has %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("header line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestBuildContentLengthIsByteLength(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"ascii body", "hello"},
		{"multibyte body", "<h1>🔒 encrypted</h1>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build("200 OK", []byte(tt.body))

			wantHeader := fmt.Sprintf("Content-Length: %d\r\n", len([]byte(tt.body)))
			if !bytes.Contains(got, []byte(wantHeader)) {
				t.Errorf("response missing %q:\n%s", wantHeader, got)
			}

			// Body must follow the terminator byte-for-byte.
			_, body, _ := bytes.Cut(got, []byte("\r\n\r\n"))
			if string(body) != tt.body {
				t.Errorf("body after terminator = %q, want %q", body, tt.body)
			}
		})
	}
}
