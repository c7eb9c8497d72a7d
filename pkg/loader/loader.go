// Package loader reads FHIR NPM packages from the local package cache,
// .tgz archives, remote URLs or in-memory resources.
package loader

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/gofhir/models/pkg/logger"
)

// ErrPackageNotFound is returned when a package is missing from the cache.
var ErrPackageNotFound = errors.New("package not found")

// DefaultPackagePath returns the default FHIR package cache path.
func DefaultPackagePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fhir", "packages")
}

// PackageRef represents a reference to a FHIR package.
type PackageRef struct {
	Name    string
	Version string
}

// String returns the package spec in "name#version" format.
func (p PackageRef) String() string {
	return fmt.Sprintf("%s#%s", p.Name, p.Version)
}

// Package represents a loaded FHIR package.
type Package struct {
	Name        string
	Version     string
	Path        string
	FHIRVersion string
	Resources   map[string]json.RawMessage // URL or resourceType/id -> raw JSON
}

// StructureDefinitions returns the raw StructureDefinitions of the package,
// sorted by URL.
func (p *Package) StructureDefinitions() []json.RawMessage {
	urls := make([]string, 0, len(p.Resources))
	for key := range p.Resources {
		if strings.HasPrefix(key, "StructureDefinition/") {
			continue
		}
		urls = append(urls, key)
	}
	sort.Strings(urls)

	var out []json.RawMessage
	for _, url := range urls {
		data := p.Resources[url]
		if rt, _ := peek(data); rt.ResourceType == "StructureDefinition" {
			out = append(out, data)
		}
	}
	return out
}

// PackageManifest represents the package.json of a FHIR NPM package.
type PackageManifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	FHIRVersion  string            `json:"fhirVersion,omitempty"`
	FHIRVersions []string          `json:"fhirVersions,omitempty"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

func (m *PackageManifest) fhirVersion() string {
	if m.FHIRVersion != "" {
		return m.FHIRVersion
	}
	if len(m.FHIRVersions) > 0 {
		return m.FHIRVersions[0]
	}
	return ""
}

// DefaultPackages maps FHIR versions to the core package the models are
// generated from.
var DefaultPackages = map[string][]PackageRef{
	"3.0.2": {
		{Name: "hl7.fhir.core", Version: "3.0.2"},
	},
	"4.3.0": {
		{Name: "hl7.fhir.r4b.core", Version: "4.3.0"},
	},
}

// Loader loads FHIR packages from the NPM cache.
type Loader struct {
	basePath string
	client   *http.Client
	log      *logger.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient sets the client used by LoadFromURL.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		l.client = c
	}
}

// WithLogger sets the logger for warnings about skipped files and packages.
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// NewLoader creates a new Loader with the given base path.
func NewLoader(basePath string, opts ...Option) *Loader {
	if basePath == "" {
		basePath = DefaultPackagePath()
	}
	l := &Loader{basePath: basePath, client: http.DefaultClient, log: logger.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// BasePath returns the base path for packages.
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPackage loads a specific package by name and version.
func (l *Loader) LoadPackage(name, version string) (*Package, error) {
	pkgDir := filepath.Join(l.basePath, fmt.Sprintf("%s#%s", name, version))

	if _, err := os.Stat(pkgDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s#%s at %s", ErrPackageNotFound, name, version, pkgDir)
	}
	return l.LoadDir(pkgDir)
}

// LoadDir loads an unpacked package. dir may be the package root or its
// "package" subdirectory.
func (l *Loader) LoadDir(dir string) (*Package, error) {
	contentDir := dir
	if _, err := os.Stat(filepath.Join(dir, "package")); err == nil {
		contentDir = filepath.Join(dir, "package")
	}

	manifestData, err := os.ReadFile(filepath.Join(contentDir, "package.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read package manifest: %w", err)
	}
	var manifest PackageManifest
	if err := json.Unmarshal(manifestData, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse package manifest: %w", err)
	}

	pkg := &Package{
		Name:        manifest.Name,
		Version:     manifest.Version,
		Path:        dir,
		FHIRVersion: manifest.fhirVersion(),
		Resources:   make(map[string]json.RawMessage),
	}

	entries, err := os.ReadDir(contentDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read package directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if entry.Name() == "package.json" || entry.Name() == ".index.json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(contentDir, entry.Name()))
		if err != nil {
			l.log.Warn("skipping %s: %v", entry.Name(), err)
			continue
		}
		pkg.add(data)
	}

	l.log.Debug("loaded %s#%s: %d resources", pkg.Name, pkg.Version, len(pkg.Resources))
	return pkg, nil
}

// LoadPackageRef loads a package from a PackageRef.
func (l *Loader) LoadPackageRef(ref PackageRef) (*Package, error) {
	return l.LoadPackage(ref.Name, ref.Version)
}

// LoadVersion loads the default packages of a FHIR version.
func (l *Loader) LoadVersion(version string) ([]*Package, error) {
	refs, ok := DefaultPackages[version]
	if !ok {
		return nil, fmt.Errorf("unknown FHIR version: %s (supported: %s)", version, strings.Join(SupportedVersions(), ", "))
	}
	return l.LoadPackages(refs)
}

// LoadPackages loads refs in order. Core packages are required; a missing
// non-core package is logged and skipped.
func (l *Loader) LoadPackages(refs []PackageRef) ([]*Package, error) {
	packages := make([]*Package, 0, len(refs))
	for _, ref := range refs {
		pkg, err := l.LoadPackageRef(ref)
		if err != nil {
			if strings.HasSuffix(ref.Name, ".core") {
				return nil, fmt.Errorf("failed to load core package: %w", err)
			}
			l.log.Warn("%s: %v", ref, err)
			continue
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

// SupportedVersions returns the FHIR versions of DefaultPackages, sorted.
func SupportedVersions() []string {
	out := make([]string, 0, len(DefaultPackages))
	for v := range DefaultPackages {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// ListPackages returns all available packages in the cache.
func (l *Loader) ListPackages() ([]string, error) {
	entries, err := os.ReadDir(l.basePath)
	if err != nil {
		return nil, err
	}

	var packages []string
	for _, entry := range entries {
		if entry.IsDir() && strings.Contains(entry.Name(), "#") {
			packages = append(packages, entry.Name())
		}
	}
	return packages, nil
}

// ParsePackageSpec parses "name#version" into separate components.
func ParsePackageSpec(spec string) (name, version string) {
	parts := strings.SplitN(spec, "#", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return spec, ""
}

// LoadFromTgz loads a FHIR package from a local .tgz file.
func (l *Loader) LoadFromTgz(tgzPath string) (*Package, error) {
	file, err := os.Open(tgzPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open tgz file: %w", err)
	}
	defer file.Close()

	return l.loadFromTgzReader(file, tgzPath)
}

// LoadFromTgzData loads a FHIR package from an in-memory .tgz archive.
func (l *Loader) LoadFromTgzData(data []byte) (*Package, error) {
	return l.loadFromTgzReader(bytes.NewReader(data), "memory")
}

// LoadFromURL downloads a .tgz package and loads it.
func (l *Loader) LoadFromURL(ctx context.Context, url string) (*Package, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("invalid package URL %s: %w", url, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download package from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download package: HTTP %d", resp.StatusCode)
	}

	return l.loadFromTgzReader(resp.Body, url)
}

// LoadFromResources builds a package named "custom" from raw resources.
// Entries that are not JSON objects are skipped.
func (l *Loader) LoadFromResources(resources [][]byte) (*Package, error) {
	pkg := &Package{
		Name:      "custom",
		Path:      "memory",
		Resources: make(map[string]json.RawMessage),
	}
	for i, data := range resources {
		if !pkg.add(data) {
			l.log.Warn("skipping resource %d: not a FHIR resource", i)
		}
	}
	return pkg, nil
}

func (l *Loader) loadFromTgzReader(reader io.Reader, source string) (*Package, error) {
	gzReader, err := gzip.NewReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzReader.Close()

	tarReader := tar.NewReader(gzReader)

	pkg := &Package{
		Resources: make(map[string]json.RawMessage),
	}

	var manifestData []byte

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar entry: %w", err)
		}
		if header.Typeflag == tar.TypeDir {
			continue
		}

		name := strings.TrimPrefix(header.Name, "package/")
		if !strings.HasSuffix(name, ".json") || strings.Contains(name, "/") {
			continue
		}

		data, err := io.ReadAll(tarReader)
		if err != nil {
			l.log.Warn("skipping %s in %s: %v", name, source, err)
			continue
		}

		switch name {
		case "package.json":
			manifestData = data
		case ".index.json":
		default:
			pkg.add(data)
		}
	}

	if manifestData == nil {
		return nil, fmt.Errorf("package.json not found in %s", source)
	}

	var manifest PackageManifest
	if err := json.Unmarshal(manifestData, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse package manifest: %w", err)
	}

	pkg.Name = manifest.Name
	pkg.Version = manifest.Version
	pkg.FHIRVersion = manifest.fhirVersion()
	pkg.Path = source

	l.log.Debug("loaded %s#%s from %s: %d resources", pkg.Name, pkg.Version, source, len(pkg.Resources))
	return pkg, nil
}

type resourceKey struct {
	ResourceType string `json:"resourceType"`
	ID           string `json:"id"`
	URL          string `json:"url"`
}

func peek(data []byte) (resourceKey, error) {
	var k resourceKey
	err := json.Unmarshal(data, &k)
	return k, err
}

// add indexes data by canonical URL and by resourceType/id.
func (p *Package) add(data []byte) bool {
	k, err := peek(data)
	if err != nil || k.ResourceType == "" {
		return false
	}
	if k.URL != "" {
		p.Resources[k.URL] = data
	}
	if k.ID != "" {
		p.Resources[k.ResourceType+"/"+k.ID] = data
	}
	return true
}
