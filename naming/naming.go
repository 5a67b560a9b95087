// Package naming implements the release naming convention.
//
// Directories are named `<app>[-<platform>]` and files `<product>-<version>.<ext>`,
// where `<ext>` is `txt` for release notes and anything else for a binary.
package naming

import "strings"

// Delimiter separates the app name from the platform and the product from the version.
const Delimiter = "-"

// Kind is the role of a release file.
type Kind string

const (
	// Binary is an installable artifact.
	Binary Kind = "exe"
	// Notes is a release-notes text file.
	Notes Kind = "txt"
	// Page is the rendered detail page, never a file on disk.
	Page Kind = "html"
)

// ParsedFile is the identity extracted from a release file name.
type ParsedFile struct {
	Name    string
	Version string
	Ext     string
	Kind    Kind
}

// ParseDirectoryName splits a directory name into the app name and its platform.
// The last segment is always the platform when more than one segment exists.
func ParseDirectoryName(name string) (app string, platform string, hasPlatform bool) {
	parts := strings.Split(name, Delimiter)
	if len(parts) == 1 {
		return parts[0], "", false
	}
	return strings.Join(parts[:len(parts)-1], Delimiter), parts[len(parts)-1], true
}

// DirectoryName is the inverse of ParseDirectoryName.
func DirectoryName(app, platform string) string {
	if platform == "" {
		return app
	}
	return app + Delimiter + platform
}

// ParseFileName extracts version and kind from a release file name. The version
// is taken from the last delimiter segment, so `my-app-1.0.exe` yields 1.0.0.
// It reports false for names that carry no version.
func ParseFileName(file string) (ParsedFile, bool) {
	parts := strings.Split(file, Delimiter)
	if len(parts) < 2 {
		return ParsedFile{}, false
	}

	verParts := strings.Split(parts[len(parts)-1], ".")
	ext := verParts[len(verParts)-1]
	verParts = verParts[:len(verParts)-1]
	version := strings.Join(verParts, ".")
	if version == "" {
		return ParsedFile{}, false
	}
	if len(verParts) == 2 {
		version += ".0"
	}

	kind := Binary
	if ext == "txt" {
		kind = Notes
	}
	return ParsedFile{
		Name:    file,
		Version: version,
		Ext:     ext,
		Kind:    kind,
	}, true
}
