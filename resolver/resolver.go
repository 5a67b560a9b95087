// Package resolver answers catalog queries: the application list, version
// ranges and the artifact behind a (version, kind) pair.
package resolver

import (
	"github.com/relcat/relcat/catalog"
	"github.com/relcat/relcat/models"
	"github.com/relcat/relcat/naming"
)

// Latest stands for the latest version in ResolveArtifact.
const Latest = "latest"

// Reference is where a resolved artifact lives.
type Reference struct {
	App     models.AppRef
	Version string
	Entry   *models.VersionEntry
	// Location is the redirect target relative to the server root,
	// e.g. "demo-win/demo-2.0.exe".
	Location string
	// Render is set when the detail page should be rendered in place.
	Render bool
}

type Resolver struct {
	Builder *catalog.Builder
}

func New(b *catalog.Builder) *Resolver {
	return &Resolver{Builder: b}
}

// ListApps flattens applications into one AppRef per platform.
func (r *Resolver) ListApps() ([]models.AppRef, error) {
	apps, err := r.Builder.ListApplications()
	if err != nil {
		return nil, err
	}

	refs := []models.AppRef{}
	for _, app := range apps.All() {
		if app.Platforms == nil {
			refs = append(refs, models.AppRef{Name: app.Name})
			continue
		}
		for _, p := range app.Platforms {
			refs = append(refs, models.AppRef{Name: app.Name, Platform: p})
		}
	}
	return refs, nil
}

// QueryVersions returns the catalog of (app, platform), or only its latest
// pair when latest is set. An empty catalog is not an error.
func (r *Resolver) QueryVersions(app, platform, after string, latest bool) (*models.Catalog, error) {
	c, err := r.Builder.BuildCatalog(app, platform, after)
	if err != nil {
		return nil, err
	}
	if latest {
		return c.Only(c.Latest()), nil
	}
	return c, nil
}

// ResolveArtifact finds the file of kind for version, which may be Latest.
func (r *Resolver) ResolveArtifact(app, platform, version string, kind naming.Kind) (*Reference, error) {
	switch kind {
	case naming.Binary, naming.Notes, naming.Page:
	default:
		return nil, &catalog.NotFound{Message: "No such kind: " + string(kind)}
	}

	c, err := r.Builder.BuildCatalog(app, platform, "")
	if err != nil {
		return nil, err
	}
	label := c.App.Dir()

	if version == Latest {
		if c.Len() == 0 {
			return nil, &catalog.NotFound{Message: "No latest " + string(kind) + " of " + label}
		}
		version = r.latest(c)
		entry, _ := c.Get(version)
		if kind == naming.Page {
			return &Reference{
				App:      c.App,
				Version:  version,
				Entry:    entry,
				Location: catalog.AccessURL(naming.Page, c.App, version),
			}, nil
		}
		return r.reference(c, version, entry, kind)
	}

	entry, ok := c.Get(version)
	if !ok {
		return nil, &catalog.NotFound{Message: "No such version " + version + " of " + label}
	}
	return r.reference(c, version, entry, kind)
}

func (r *Resolver) latest(c *models.Catalog) string {
	if r.Builder.LatestByVersion {
		if v := c.Latest(); v != "" {
			return v
		}
	}
	return c.Last()
}

func (r *Resolver) reference(c *models.Catalog, version string, entry *models.VersionEntry, kind naming.Kind) (*Reference, error) {
	ref := &Reference{App: c.App, Version: version, Entry: entry}
	if file := entry.File(kind); file != "" {
		ref.Location = c.App.Dir() + "/" + file
		return ref, nil
	}
	if kind == naming.Page && entry.HTMLURL != "" {
		ref.Render = true
		return ref, nil
	}
	return nil, &catalog.NotFound{Message: "No such " + string(kind) + " " + version + " of " + c.App.Dir()}
}
