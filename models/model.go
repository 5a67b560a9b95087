package models

import (
	"bytes"
	"encoding/json"

	"github.com/relcat/relcat/naming"
)

// Application is a product derived from the directory names of the tree.
// Platforms is nil for an application without platforms.
type Application struct {
	Name      string
	Platforms []string
}

// HasPlatform reports whether platform is registered for the application.
func (a *Application) HasPlatform(platform string) bool {
	for _, p := range a.Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

// Applications keeps applications in first-seen order.
type Applications struct {
	names []string
	apps  map[string]*Application
}

func NewApplications() *Applications {
	return &Applications{apps: map[string]*Application{}}
}

// Add records one directory. Platforms are appended as seen, duplicates included.
func (a *Applications) Add(name, platform string, hasPlatform bool) {
	app, ok := a.apps[name]
	if !ok {
		app = &Application{Name: name}
		a.apps[name] = app
		a.names = append(a.names, name)
	}
	if hasPlatform {
		app.Platforms = append(app.Platforms, platform)
	}
}

func (a *Applications) Get(name string) (*Application, bool) {
	app, ok := a.apps[name]
	return app, ok
}

func (a *Applications) Len() int {
	return len(a.names)
}

// All returns the applications in first-seen order.
func (a *Applications) All() []*Application {
	all := make([]*Application, 0, len(a.names))
	for _, n := range a.names {
		all = append(all, a.apps[n])
	}
	return all
}

// AppRef names one (application, platform) pair.
type AppRef struct {
	Name     string `json:"name"`
	Platform string `json:"platform,omitempty"`
}

// Dir is the directory holding the pair's release files.
func (r AppRef) Dir() string {
	return naming.DirectoryName(r.Name, r.Platform)
}

// Path is the URL path segment `<app>[/<platform>]`.
func (r AppRef) Path() string {
	if r.Platform == "" {
		return r.Name
	}
	return r.Name + "/" + r.Platform
}

// VersionEntry holds the files of one version, one per kind.
type VersionEntry struct {
	Exe     string `json:"exe,omitempty"`
	ExeURL  string `json:"exe_url,omitempty"`
	Txt     string `json:"txt,omitempty"`
	TxtURL  string `json:"txt_url,omitempty"`
	HTMLURL string `json:"html_url,omitempty"`
}

// File returns the stored filename for kind, or "".
func (e *VersionEntry) File(kind naming.Kind) string {
	switch kind {
	case naming.Binary:
		return e.Exe
	case naming.Notes:
		return e.Txt
	}
	return ""
}

// URL returns the access URL for kind, or "".
func (e *VersionEntry) URL(kind naming.Kind) string {
	switch kind {
	case naming.Binary:
		return e.ExeURL
	case naming.Notes:
		return e.TxtURL
	case naming.Page:
		return e.HTMLURL
	}
	return ""
}

// Set stores file and url for kind. The last call for a kind wins.
func (e *VersionEntry) Set(kind naming.Kind, file, url string) {
	switch kind {
	case naming.Binary:
		e.Exe, e.ExeURL = file, url
	case naming.Notes:
		e.Txt, e.TxtURL = file, url
	}
}

// Catalog maps versions to entries for one AppRef, in insertion order.
type Catalog struct {
	App     AppRef
	order   []string
	entries map[string]*VersionEntry
	latest  string
}

func NewCatalog(app AppRef) *Catalog {
	return &Catalog{App: app, entries: map[string]*VersionEntry{}}
}

// Put returns the entry for version, creating it at the end if missing.
func (c *Catalog) Put(version string) *VersionEntry {
	e, ok := c.entries[version]
	if !ok {
		e = &VersionEntry{}
		c.entries[version] = e
		c.order = append(c.order, version)
	}
	return e
}

func (c *Catalog) Get(version string) (*VersionEntry, bool) {
	e, ok := c.entries[version]
	return e, ok
}

func (c *Catalog) Len() int {
	return len(c.order)
}

// Versions returns the versions in insertion order.
func (c *Catalog) Versions() []string {
	return append([]string(nil), c.order...)
}

// Last returns the most recently created version, or "" when empty.
func (c *Catalog) Last() string {
	if len(c.order) == 0 {
		return ""
	}
	return c.order[len(c.order)-1]
}

// SetLatest records the latest candidate.
func (c *Catalog) SetLatest(version string) {
	c.latest = version
}

// Latest returns the latest candidate, or "" when the catalog is empty.
func (c *Catalog) Latest() string {
	return c.latest
}

// Only returns a catalog holding just version, empty when version is unknown.
func (c *Catalog) Only(version string) *Catalog {
	single := NewCatalog(c.App)
	if e, ok := c.entries[version]; ok {
		single.entries[version] = e
		single.order = []string{version}
		single.latest = version
	}
	return single
}

// MarshalJSON encodes the catalog as an object keyed by version in insertion order.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.entries[v])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
