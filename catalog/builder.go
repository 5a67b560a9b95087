// Package catalog builds the versioned catalog of an application from its
// release directory.
package catalog

import (
	"github.com/blang/semver"

	"github.com/relcat/relcat/fsdir"
	"github.com/relcat/relcat/models"
	"github.com/relcat/relcat/naming"
)

// Builder scans the release tree on every call; it keeps no state between calls.
type Builder struct {
	Lister fsdir.Lister
	// URLPrefix is put in front of every access URL, e.g. "/".
	URLPrefix string
	// LatestByVersion makes the highest version the latest one instead of the
	// last one listed.
	LatestByVersion bool
}

func NewBuilder(lister fsdir.Lister) *Builder {
	return &Builder{Lister: lister}
}

// ListApplications derives the applications from the top-level directories.
func (b *Builder) ListApplications() (*models.Applications, error) {
	entries, err := b.Lister.ListEntries("")
	if err != nil {
		return nil, err
	}

	apps := models.NewApplications()
	for _, e := range entries {
		if !e.IsDir {
			continue
		}
		apps.Add(naming.ParseDirectoryName(e.Name))
	}
	return apps, nil
}

// Resolve checks that the app exists and carries platform, if one is given.
func (b *Builder) Resolve(app, platform string) (models.AppRef, error) {
	apps, err := b.ListApplications()
	if err != nil {
		return models.AppRef{}, err
	}
	a, ok := apps.Get(app)
	if !ok {
		return models.AppRef{}, notFoundf("No such app: %s", app)
	}
	if platform != "" && !a.HasPlatform(platform) {
		return models.AppRef{}, notFoundf("%s app has no platform: %s", app, platform)
	}
	return models.AppRef{Name: app, Platform: platform}, nil
}

// BuildCatalog scans the directory of (app, platform) in listing order. When
// after is not empty only versions strictly greater than after are kept.
func (b *Builder) BuildCatalog(app, platform, after string) (*models.Catalog, error) {
	ref, err := b.Resolve(app, platform)
	if err != nil {
		return nil, err
	}

	var afterVersion semver.Version
	if after != "" {
		afterVersion, err = ParseVersion(after)
		if err != nil {
			return nil, err
		}
	}

	entries, err := b.Lister.ListEntries(ref.Dir())
	if err != nil {
		return nil, err
	}

	c := models.NewCatalog(ref)
	for _, e := range entries {
		if !e.IsFile {
			continue
		}
		f, ok := naming.ParseFileName(e.Name)
		if !ok {
			continue
		}
		if after != "" {
			v, err := semver.Make(f.Version)
			if err != nil || !v.GT(afterVersion) {
				continue
			}
		}

		entry := c.Put(f.Version)
		entry.Set(f.Kind, f.Name, b.accessURL(f.Kind, ref, f.Version))
		entry.HTMLURL = b.accessURL(naming.Page, ref, f.Version)
		b.trackLatest(c, f.Version)
	}
	return c, nil
}

func (b *Builder) trackLatest(c *models.Catalog, version string) {
	if !b.LatestByVersion {
		c.SetLatest(version)
		return
	}
	if _, err := semver.Make(version); err != nil {
		return
	}
	if c.Latest() == "" || GreaterThan(version, c.Latest()) {
		c.SetLatest(version)
	}
}

// AccessURL is the URL `api/<kind>/<app>[/<platform>]/<version>`.
func AccessURL(kind naming.Kind, ref models.AppRef, version string) string {
	return "api/" + string(kind) + "/" + ref.Path() + "/" + version
}

func (b *Builder) accessURL(kind naming.Kind, ref models.AppRef, version string) string {
	return b.URLPrefix + AccessURL(kind, ref, version)
}
