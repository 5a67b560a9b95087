package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/relcat/relcat/models"
)

func TestDetail(t *testing.T) {
	tests := []struct {
		name        string
		entry       *models.VersionEntry
		contains    []string
		notContains []string
	}{
		{
			name:     "both links",
			entry:    &models.VersionEntry{ExeURL: "/api/exe/demo/win/1.0.0", TxtURL: "/api/txt/demo/win/1.0.0"},
			contains: []string{"<title>GOLOS demo - 1.0.0</title>", `href="/api/exe/demo/win/1.0.0"`, `href="/api/txt/demo/win/1.0.0"`},
		},
		{
			name:        "no notes",
			entry:       &models.VersionEntry{ExeURL: "/api/exe/demo/win/1.0.0"},
			contains:    []string{`href="/api/exe/demo/win/1.0.0"`},
			notContains: []string{"Release notes"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Detail(&buf, "GOLOS", models.AppRef{Name: "demo", Platform: "win"}, "1.0.0", tt.entry)
			if err != nil {
				t.Fatal(err)
			}
			for _, s := range tt.contains {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("Detail() missing %q in\n%s", s, buf.String())
				}
			}
			for _, s := range tt.notContains {
				if strings.Contains(buf.String(), s) {
					t.Errorf("Detail() should not contain %q", s)
				}
			}
		})
	}
}

func TestListing(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	entries := []ListingEntry{
		{Name: "demo-1.0.exe", Size: 2048, ModTime: now.Add(-2 * time.Hour)},
		{Name: "old", IsDir: true},
		{Name: "demo-1.0.txt", Size: 12},
	}

	var buf bytes.Buffer
	if err := Listing(&buf, "demo-win", entries, now); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, s := range []string{
		"Index of /demo-win",
		`href="/"`,
		`href="/demo-win/old/"`,
		`href="/demo-win/demo-1.0.exe"`,
		"2.0 kB",
		"12 B",
		"2 hours ago",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("Listing() missing %q in\n%s", s, out)
		}
	}
	if strings.Index(out, "old/") > strings.Index(out, "demo-1.0.exe") {
		t.Error("Listing() should put directories first")
	}
}

func TestListing_Root(t *testing.T) {
	var buf bytes.Buffer
	if err := Listing(&buf, "", []ListingEntry{{Name: "demo-win", IsDir: true}}, time.Now()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "..") {
		t.Error("root listing should not link to a parent")
	}
	if !strings.Contains(buf.String(), `href="/demo-win/"`) {
		t.Errorf("Listing() = %s", buf.String())
	}
}
