package domain

import (
	"slices"
	"strings"
)

// Tier decides whether a package lives in the engine-wide plugin area or in the project asset area.
type Tier uint8

const (
	// PluginTier packages are compiled before asset code and may not depend on it.
	PluginTier Tier = iota
	// AssetTier packages are compiled with the project scripts.
	AssetTier
)

// String returns the tier name.
func (t Tier) String() string {
	if t == AssetTier {
		return "asset"
	}
	return "plugin"
}

// FolderType classifies a package and decides its output directory and platform restrictions.
type FolderType uint8

const (
	// FolderNormal packages are placed in the plugin or asset root according to their tier.
	FolderNormal FolderType = iota
	// FolderPlatformProject packages are native android projects.
	FolderPlatformProject
	// FolderPlatformLibraries packages hold native android libraries.
	FolderPlatformLibraries
	// FolderMobileLibrary packages hold native iOS code.
	FolderMobileLibrary
	// FolderWebLibrary packages hold WebGL plugins.
	FolderWebLibrary
	// FolderStreamingAssets packages are copied verbatim into player builds.
	FolderStreamingAssets
	// FolderEditorGizmos packages hold editor gizmo icons.
	FolderEditorGizmos
)

var folderTypeNames = map[FolderType]string{
	FolderNormal:            "normal",
	FolderPlatformProject:   "androidproject",
	FolderPlatformLibraries: "androidlibraries",
	FolderMobileLibrary:     "ios",
	FolderWebLibrary:        "webgl",
	FolderStreamingAssets:   "streamingassets",
	FolderEditorGizmos:      "gizmos",
}

var folderTypeAliases = map[string]FolderType{
	"":                  FolderNormal,
	"normal":            FolderNormal,
	"androidproject":    FolderPlatformProject,
	"platformproject":   FolderPlatformProject,
	"androidlibraries":  FolderPlatformLibraries,
	"platformlibraries": FolderPlatformLibraries,
	"ios":               FolderMobileLibrary,
	"mobilelibrary":     FolderMobileLibrary,
	"webgl":             FolderWebLibrary,
	"weblibrary":        FolderWebLibrary,
	"streamingassets":   FolderStreamingAssets,
	"gizmos":            FolderEditorGizmos,
	"editorgizmos":      FolderEditorGizmos,
}

// ParseFolderType converts a config value into a FolderType. Matching is case-insensitive
// and the empty string means FolderNormal.
func ParseFolderType(value string) (FolderType, error) {
	ft, ok := folderTypeAliases[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return FolderNormal, Annotate(ErrUnknownFolderType, "folder_type", value)
	}
	return ft, nil
}

// String returns the canonical config value of the folder type.
func (f FolderType) String() string {
	return folderTypeNames[f]
}

// FixedPlatforms returns the platforms a folder type is restricted to, or nil when the
// folder type places no restriction of its own.
func (f FolderType) FixedPlatforms() []Platform {
	switch f {
	case FolderPlatformProject, FolderPlatformLibraries:
		return []Platform{PlatformAndroid}
	case FolderMobileLibrary:
		return []Platform{PlatformIOS}
	case FolderWebLibrary:
		return []Platform{PlatformWebGL}
	default:
		return nil
	}
}

// PackageReference is a request to include a package, tagged with where the request came from.
type PackageReference struct {
	Name string
	// RequestedBy is the package that depends on Name, or "" for the project config.
	RequestedBy string
	Provenance  string
}

// PrebuiltProjectInfo describes an externally compiled project that produces a package's contents.
type PrebuiltProjectInfo struct {
	// Path is the absolute path of the project descriptor.
	Path string
	// Configuration is the build configuration used for the project, if any.
	Configuration string
	// AssemblyName is the declared output name of the project.
	AssemblyName string
	// Dependencies are the package names the project references.
	Dependencies []string
}

// PackageMetadata is the decoded per-package configuration with defaults applied.
type PackageMetadata struct {
	FolderType          FolderType
	Dependencies        []string
	GroupedDependencies []string
	ExtraDependencies   []string
	Platforms           []Platform
	ForcePluginTier     bool
	ForceAssetTier      bool
	// PrebuiltPath is the descriptor path as written in the config, resolved against the package directory.
	PrebuiltPath   string
	PrebuiltConfig string
	// ConfigPath is the metadata file the values were read from; empty when defaults were used.
	ConfigPath string
}

// AllowsPlatform reports whether a package with this metadata may be included for the platform.
func (m *PackageMetadata) AllowsPlatform(p Platform) bool {
	allowed := m.FolderType.FixedPlatforms()
	if allowed == nil {
		if len(m.Platforms) == 0 {
			return true
		}
		allowed = m.Platforms
	}
	return slices.Contains(allowed, p)
}

// PackageRecord is a resolved package.
type PackageRecord struct {
	Name          string
	HomeDirectory string
	FolderType    FolderType
	Tier          Tier
	// ForceTier requires the package to end resolution in PluginTier.
	ForceTier bool

	ExplicitDependencies []string
	GroupedDependencies  []string
	ExtraDependencies    []string

	Prebuilt *PrebuiltProjectInfo

	GeneratesCustomBuildProject bool

	// AllDependencies is the transitive closure over explicit dependencies.
	// It is nil until the graph computes it.
	AllDependencies map[string]struct{}

	// Provenance describes what caused the package to be included.
	Provenance string
}

// IsPrebuilt reports whether the package is produced by a prebuilt project.
func (r *PackageRecord) IsPrebuilt() bool {
	return r.Prebuilt != nil
}

// DependsOn reports whether name is in the package's transitive closure.
func (r *PackageRecord) DependsOn(name string) bool {
	_, ok := r.AllDependencies[name]
	return ok
}

// SortedDependencies returns the transitive closure in lexical order.
func (r *PackageRecord) SortedDependencies() []string {
	names := make([]string, 0, len(r.AllDependencies))
	for name := range r.AllDependencies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// clone returns a deep copy so a schema never shares mutable state with the graph it came from.
func (r *PackageRecord) clone() *PackageRecord {
	c := *r
	c.ExplicitDependencies = slices.Clone(r.ExplicitDependencies)
	c.GroupedDependencies = slices.Clone(r.GroupedDependencies)
	c.ExtraDependencies = slices.Clone(r.ExtraDependencies)
	if r.Prebuilt != nil {
		p := *r.Prebuilt
		p.Dependencies = slices.Clone(r.Prebuilt.Dependencies)
		c.Prebuilt = &p
	}
	if r.AllDependencies != nil {
		c.AllDependencies = make(map[string]struct{}, len(r.AllDependencies))
		for k := range r.AllDependencies {
			c.AllDependencies[k] = struct{}{}
		}
	}
	return &c
}
