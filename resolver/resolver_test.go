package resolver

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/relcat/relcat/catalog"
	"github.com/relcat/relcat/fsdir"
	"github.com/relcat/relcat/models"
	"github.com/relcat/relcat/naming"
)

func newResolver() *Resolver {
	return New(catalog.NewBuilder(&fsdir.StaticLister{
		Dirs: []string{"demo-win", "tool", "demo-mac", "empty-linux"},
		Files: map[string][]string{
			"demo-win":    {"demo-1.0.exe", "demo-1.0.txt", "demo-2.0.exe"},
			"demo-mac":    {"demo-3.0.dmg", "demo-1.5.dmg", "demo-3.0.txt"},
			"tool":        {"tool-0.1.zip"},
			"empty-linux": {"notes.md"},
		},
	}))
}

func TestResolver_ListApps(t *testing.T) {
	got, err := newResolver().ListApps()
	if err != nil {
		t.Fatal(err)
	}
	want := []models.AppRef{
		{Name: "demo", Platform: "win"},
		{Name: "demo", Platform: "mac"},
		{Name: "tool"},
		{Name: "empty", Platform: "linux"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListApps() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolver_QueryVersions(t *testing.T) {
	r := newResolver()

	tests := []struct {
		name     string
		app      string
		platform string
		after    string
		latest   bool
		want     []string
	}{
		{name: "all versions", app: "demo", platform: "win", want: []string{"1.0.0", "2.0.0"}},
		{name: "after", app: "demo", platform: "win", after: "1.0.0", want: []string{"2.0.0"}},
		{name: "latest", app: "demo", platform: "win", latest: true, want: []string{"2.0.0"}},
		{name: "latest is last touched", app: "demo", platform: "mac", latest: true, want: []string{"3.0.0"}},
		{name: "latest with nothing after", app: "demo", platform: "win", after: "2.0.0", latest: true, want: nil},
		{name: "latest of empty directory", app: "empty", platform: "linux", latest: true, want: nil},
		{name: "platform-less app", app: "tool", want: []string{"0.1.0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := r.QueryVersions(tt.app, tt.platform, tt.after, tt.latest)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, c.Versions()); diff != "" {
				t.Errorf("QueryVersions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolver_ResolveArtifact(t *testing.T) {
	r := newResolver()

	tests := []struct {
		name         string
		app          string
		platform     string
		version      string
		kind         naming.Kind
		wantLocation string
		wantRender   bool
		wantErr      string
	}{
		{name: "latest exe", app: "demo", platform: "win", version: Latest, kind: naming.Binary, wantLocation: "demo-win/demo-2.0.exe"},
		{name: "concrete txt", app: "demo", platform: "win", version: "1.0.0", kind: naming.Notes, wantLocation: "demo-win/demo-1.0.txt"},
		{name: "missing txt", app: "demo", platform: "win", version: "2.0.0", kind: naming.Notes, wantErr: "No such txt 2.0.0 of demo-win"},
		{name: "missing version", app: "demo", platform: "win", version: "9.0.0", kind: naming.Binary, wantErr: "No such version 9.0.0 of demo-win"},
		{name: "latest is last listed, not highest", app: "demo", platform: "mac", version: Latest, kind: naming.Binary, wantLocation: "demo-mac/demo-1.5.dmg"},
		{name: "latest lacking kind", app: "demo", platform: "mac", version: Latest, kind: naming.Notes, wantErr: "No such txt 1.5.0 of demo-mac"},
		{name: "page renders", app: "demo", platform: "win", version: "2.0.0", kind: naming.Page, wantRender: true},
		{name: "latest page redirects", app: "demo", platform: "win", version: Latest, kind: naming.Page, wantLocation: "api/html/demo/win/2.0.0"},
		{name: "platform-less", app: "tool", version: "0.1.0", kind: naming.Binary, wantLocation: "tool/tool-0.1.zip"},
		{name: "empty latest", app: "empty", platform: "linux", version: Latest, kind: naming.Binary, wantErr: "No latest exe of empty-linux"},
		{name: "unknown app", app: "ghost", version: Latest, kind: naming.Binary, wantErr: "No such app: ghost"},
		{name: "unknown kind", app: "demo", platform: "win", version: Latest, kind: "zip", wantErr: "No such kind: zip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := r.ResolveArtifact(tt.app, tt.platform, tt.version, tt.kind)
			if tt.wantErr != "" {
				if !catalog.IsNotFound(err) {
					t.Fatalf("ResolveArtifact() error = %v, want NotFound", err)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("ResolveArtifact() error = %q, want %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if ref.Location != tt.wantLocation || ref.Render != tt.wantRender {
				t.Errorf("ResolveArtifact() = (%q, %v), want (%q, %v)", ref.Location, ref.Render, tt.wantLocation, tt.wantRender)
			}
		})
	}
}

func TestResolver_ResolveArtifact_LatestByVersion(t *testing.T) {
	r := newResolver()
	r.Builder.LatestByVersion = true

	ref, err := r.ResolveArtifact("demo", "mac", Latest, naming.Binary)
	if err != nil {
		t.Fatal(err)
	}
	if ref.Location != "demo-mac/demo-3.0.dmg" {
		t.Errorf("Location = %v, want demo-mac/demo-3.0.dmg", ref.Location)
	}
}

func TestResolver_AccessURLsRoundTrip(t *testing.T) {
	r := newResolver()
	for _, app := range []models.AppRef{{Name: "demo", Platform: "win"}, {Name: "tool"}} {
		c, err := r.QueryVersions(app.Name, app.Platform, "", false)
		if err != nil {
			t.Fatal(err)
		}
		for _, v := range c.Versions() {
			e, _ := c.Get(v)
			for _, kind := range []naming.Kind{naming.Binary, naming.Notes, naming.Page} {
				url := e.URL(kind)
				if url == "" {
					continue
				}
				parts := strings.Split(url, "/")
				got := models.AppRef{Name: parts[2]}
				if len(parts) == 5 {
					got.Platform = parts[3]
				}
				if parts[0] != "api" || naming.Kind(parts[1]) != kind || got != app || parts[len(parts)-1] != v {
					t.Errorf("url %s does not decompose to (%v, %s, %s)", url, app, v, kind)
				}
			}
		}
	}
}
