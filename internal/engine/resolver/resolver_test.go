package resolver_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports/mocks"
	"go.trai.ch/weave/internal/engine/enforcer"
	"go.trai.ch/weave/internal/engine/resolver"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

var roots = domain.SearchRoots{Libraries: []string{"/packages"}}

func home(name string) string {
	return filepath.Join("/packages", name)
}

func configPath(name string) string {
	return filepath.Join(home(name), domain.PackageConfigFileName)
}

// packageSet describes the packages available in the search roots.
type packageSet struct {
	meta     map[string]*domain.PackageMetadata
	prebuilt map[string][]string
}

func newPackageSet() *packageSet {
	return &packageSet{
		meta:     make(map[string]*domain.PackageMetadata),
		prebuilt: make(map[string][]string),
	}
}

func (s *packageSet) add(name string, meta domain.PackageMetadata) *packageSet {
	meta.ConfigPath = configPath(name)
	s.meta[name] = &meta
	return s
}

func (s *packageSet) addPrebuilt(name string, deps ...string) *packageSet {
	s.add(name, domain.PackageMetadata{PrebuiltPath: filepath.Join(home(name), name+".csproj")})
	s.prebuilt[name] = deps
	return s
}

func (s *packageSet) catalog(ctrl *gomock.Controller) *mocks.MockPackageCatalog {
	m := mocks.NewMockPackageCatalog(ctrl)
	m.EXPECT().Resolve(gomock.Any(), roots).DoAndReturn(func(name string, _ domain.SearchRoots) (string, error) {
		if _, ok := s.meta[name]; !ok {
			return "", domain.Annotate(domain.ErrPackageNotFound, "package", name)
		}
		return home(name), nil
	}).AnyTimes()
	m.EXPECT().LoadMetadata(gomock.Any()).DoAndReturn(func(dir string) (*domain.PackageMetadata, error) {
		meta := *s.meta[filepath.Base(dir)]
		return &meta, nil
	}).AnyTimes()
	m.EXPECT().LoadPrebuilt(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(name, _ string, meta *domain.PackageMetadata) (*domain.PrebuiltProjectInfo, error) {
			if meta.PrebuiltPath == "" {
				return nil, nil
			}
			return &domain.PrebuiltProjectInfo{
				Path:         meta.PrebuiltPath,
				AssemblyName: name,
				Dependencies: s.prebuilt[name],
			}, nil
		}).AnyTimes()
	return m
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	l := mocks.NewMockLogger(ctrl)
	l.EXPECT().Debug(gomock.Any()).AnyTimes()
	return l
}

func newBuilder(t *testing.T, s *packageSet) *resolver.Builder {
	t.Helper()
	ctrl := gomock.NewController(t)
	return resolver.NewBuilder(s.catalog(ctrl), quietLogger(ctrl))
}

func newSchemaLoader(t *testing.T, s *packageSet, cfg *domain.ProjectConfig) (*resolver.SchemaLoader, domain.ProjectPaths) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := quietLogger(ctrl)

	mockFS := mocks.NewMockFileSystem(ctrl)
	mockFS.EXPECT().DirExists(gomock.Any()).Return(true).AnyTimes()
	mockFS.EXPECT().FileExists(gomock.Any()).Return(true).AnyTimes()
	mockFS.EXPECT().HasFilesWithExt(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()

	paths := domain.NewProjectPaths("/projects", "Game", domain.NewProjectTarget(domain.PlatformWindows, ""))
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().LoadProjectConfig(paths).Return(cfg, nil).AnyTimes()

	return resolver.NewSchemaLoader(loader, resolver.NewBuilder(s.catalog(ctrl), log), enforcer.New(mockFS, log), log), paths
}

func names(g *domain.Graph) []string {
	var out []string
	for r := range g.Packages() {
		out = append(out, r.Name)
	}
	return out
}

func metadata(t *testing.T, err error) map[string]any {
	t.Helper()
	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr), "expected *zerr.Error, got %T", err)
	return zErr.Metadata()
}

func TestBuilder_Expand_BreadthFirst(t *testing.T) {
	t.Parallel()

	s := newPackageSet().
		add("App", domain.PackageMetadata{Dependencies: []string{"Net", "UI"}}).
		add("Scenes", domain.PackageMetadata{Dependencies: []string{"UI"}}).
		add("Net", domain.PackageMetadata{Dependencies: []string{"Log"}}).
		add("UI", domain.PackageMetadata{}).
		add("Log", domain.PackageMetadata{})

	cfg := &domain.ProjectConfig{Roots: roots, PluginPackages: []string{"App"}, AssetPackages: []string{"Scenes"}}
	exp, err := newBuilder(t, s).Expand(cfg, domain.PlatformWindows)
	require.NoError(t, err)

	assert.Equal(t, []string{"App", "Scenes", "Net", "UI", "Log"}, names(exp.Graph))

	app, _ := exp.Graph.Package("App")
	assert.Equal(t, resolver.ConfigProvenance, app.Provenance)
	assert.Equal(t, home("App"), app.HomeDirectory)

	net, _ := exp.Graph.Package("Net")
	assert.Equal(t, configPath("App"), net.Provenance)
	log, _ := exp.Graph.Package("Log")
	assert.Equal(t, configPath("Net"), log.Provenance)
	assert.Nil(t, log.AllDependencies, "closures are computed later")
}

func TestBuilder_Expand_Tiers(t *testing.T) {
	t.Parallel()

	s := newPackageSet().
		add("Core", domain.PackageMetadata{ForcePluginTier: true}).
		add("Scenes", domain.PackageMetadata{}).
		add("Levels", domain.PackageMetadata{ForceAssetTier: true})

	cfg := &domain.ProjectConfig{
		Roots:          roots,
		PluginPackages: []string{"Core", "Levels"},
		AssetPackages:  []string{"Scenes"},
	}
	exp, err := newBuilder(t, s).Expand(cfg, domain.PlatformWindows)
	require.NoError(t, err)

	core, _ := exp.Graph.Package("Core")
	scenes, _ := exp.Graph.Package("Scenes")
	levels, _ := exp.Graph.Package("Levels")
	assert.Equal(t, domain.PluginTier, core.Tier)
	assert.True(t, core.ForceTier)
	assert.Equal(t, domain.AssetTier, scenes.Tier)
	assert.Equal(t, domain.AssetTier, levels.Tier)
}

func TestBuilder_Expand_PackageInBothTiers(t *testing.T) {
	t.Parallel()

	cfg := &domain.ProjectConfig{
		Roots:          roots,
		PluginPackages: []string{"Core"},
		AssetPackages:  []string{"Core"},
	}
	_, err := newBuilder(t, newPackageSet()).Expand(cfg, domain.PlatformWindows)
	require.ErrorIs(t, err, domain.ErrPackageInBothTiers)
	assert.Equal(t, "Core", metadata(t, err)["package"])
}

func TestBuilder_Expand_PlatformFiltering(t *testing.T) {
	t.Parallel()

	s := newPackageSet().
		add("App", domain.PackageMetadata{Dependencies: []string{"Bridge", "Desktop"}}).
		add("Bridge", domain.PackageMetadata{FolderType: domain.FolderMobileLibrary, Dependencies: []string{"NotThere"}}).
		add("Desktop", domain.PackageMetadata{Platforms: []domain.Platform{domain.PlatformWindows, domain.PlatformOSX}})

	cfg := &domain.ProjectConfig{Roots: roots, PluginPackages: []string{"App"}}

	exp, err := newBuilder(t, s).Expand(cfg, domain.PlatformWindows)
	require.NoError(t, err, "dependencies of dropped packages are never resolved")
	assert.Equal(t, []string{"App", "Desktop"}, names(exp.Graph))
	assert.True(t, exp.IsDropped("Bridge"))

	exp, err = newBuilder(t, s).Expand(cfg, domain.PlatformLinux)
	require.NoError(t, err)
	assert.Equal(t, []string{"App"}, names(exp.Graph))
	assert.True(t, exp.IsDropped("Desktop"))

	_, err = newBuilder(t, s).Expand(cfg, domain.PlatformIOS)
	require.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestBuilder_Expand_MissingDependency(t *testing.T) {
	t.Parallel()

	s := newPackageSet().add("App", domain.PackageMetadata{Dependencies: []string{"Missing"}})
	cfg := &domain.ProjectConfig{Roots: roots, PluginPackages: []string{"App"}}

	exp, err := newBuilder(t, s).Expand(cfg, domain.PlatformWindows)
	require.ErrorIs(t, err, domain.ErrPackageNotFound)
	assert.Nil(t, exp)

	meta := metadata(t, err)
	assert.Equal(t, "Missing", meta["package"])
	assert.Equal(t, "App", meta["requested_by"])
	assert.Equal(t, configPath("App"), meta["referenced_by"])
}

func TestBuilder_Expand_MissingConfigPackage(t *testing.T) {
	t.Parallel()

	cfg := &domain.ProjectConfig{Roots: roots, AssetPackages: []string{"Ghost"}}

	_, err := newBuilder(t, newPackageSet()).Expand(cfg, domain.PlatformWindows)
	require.ErrorIs(t, err, domain.ErrPackageNotFound)

	meta := metadata(t, err)
	assert.Equal(t, resolver.ConfigProvenance, meta["referenced_by"])
	assert.NotContains(t, meta, "requested_by")
}

func TestBuilder_Expand_FollowsEveryDependencyKind(t *testing.T) {
	t.Parallel()

	s := newPackageSet().
		add("App", domain.PackageMetadata{
			Dependencies:        []string{"Net"},
			GroupedDependencies: []string{"Mate"},
			ExtraDependencies:   []string{"Extra"},
		}).
		add("Mate", domain.PackageMetadata{}).
		add("Extra", domain.PackageMetadata{}).
		addPrebuilt("Net", "Log").
		add("Log", domain.PackageMetadata{})

	cfg := &domain.ProjectConfig{Roots: roots, PluginPackages: []string{"App"}}
	exp, err := newBuilder(t, s).Expand(cfg, domain.PlatformWindows)
	require.NoError(t, err)

	assert.Equal(t, []string{"App", "Net", "Mate", "Extra", "Log"}, names(exp.Graph))

	net, _ := exp.Graph.Package("Net")
	require.True(t, net.IsPrebuilt())
	assert.Equal(t, []string{"Log"}, net.ExplicitDependencies, "prebuilt references become explicit dependencies")

	app, _ := exp.Graph.Package("App")
	assert.Equal(t, []string{"Net"}, app.ExplicitDependencies)
	assert.Equal(t, []string{"Mate"}, app.GroupedDependencies)
	assert.Equal(t, []string{"Extra"}, app.ExtraDependencies)
}

func TestBuilder_MarkCustomProjects(t *testing.T) {
	t.Parallel()

	s := newPackageSet().
		add("App", domain.PackageMetadata{Dependencies: []string{"NetCore", "NetHttp", "Bridge", "Tools"}}).
		add("NetCore", domain.PackageMetadata{}).
		add("NetHttp", domain.PackageMetadata{}).
		add("Tools", domain.PackageMetadata{}).
		add("Bridge", domain.PackageMetadata{FolderType: domain.FolderWebLibrary})

	cfg := &domain.ProjectConfig{Roots: roots, PluginPackages: []string{"App"}}

	t.Run("names and patterns", func(t *testing.T) {
		t.Parallel()

		b := newBuilder(t, s)
		exp, err := b.Expand(cfg, domain.PlatformWindows)
		require.NoError(t, err)
		require.NoError(t, b.MarkCustomProjects(exp, []string{"/Net", "Tools", "Bridge"}))

		var marked []string
		for r := range exp.Graph.Packages() {
			if r.GeneratesCustomBuildProject {
				marked = append(marked, r.Name)
			}
		}
		assert.Equal(t, []string{"NetCore", "NetHttp", "Tools"}, marked)
	})

	t.Run("pattern anchored at start", func(t *testing.T) {
		t.Parallel()

		b := newBuilder(t, s)
		exp, err := b.Expand(cfg, domain.PlatformWindows)
		require.NoError(t, err)
		require.NoError(t, b.MarkCustomProjects(exp, []string{"/Http"}))

		r, _ := exp.Graph.Package("NetHttp")
		assert.False(t, r.GeneratesCustomBuildProject)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		t.Parallel()

		b := newBuilder(t, s)
		exp, err := b.Expand(cfg, domain.PlatformWindows)
		require.NoError(t, err)

		err = b.MarkCustomProjects(exp, []string{"/Net("})
		require.ErrorIs(t, err, domain.ErrInvalidProjectPattern)
		assert.Equal(t, "/Net(", metadata(t, err)["pattern"])
	})

	t.Run("unknown package", func(t *testing.T) {
		t.Parallel()

		b := newBuilder(t, s)
		exp, err := b.Expand(cfg, domain.PlatformWindows)
		require.NoError(t, err)

		err = b.MarkCustomProjects(exp, []string{"Ghost"})
		require.ErrorIs(t, err, domain.ErrUnknownCustomProject)
		assert.Equal(t, "Ghost", metadata(t, err)["package"])
	})
}

func TestSchemaLoader_TierRelocation(t *testing.T) {
	t.Parallel()

	s := newPackageSet().
		add("A", domain.PackageMetadata{Dependencies: []string{"B"}}).
		add("B", domain.PackageMetadata{})
	cfg := &domain.ProjectConfig{
		ProjectName:    "Game",
		Roots:          roots,
		PluginPackages: []string{"A"},
		AssetPackages:  []string{"B"},
	}

	loader, paths := newSchemaLoader(t, s, cfg)
	schema, err := loader.LoadSchema(paths)
	require.NoError(t, err)

	a, ok := schema.Package("A")
	require.True(t, ok)
	assert.Equal(t, domain.AssetTier, a.Tier)
	assert.Equal(t, paths.Target(), schema.Target())
	assert.Equal(t, []string{"A", "B"}, schema.PackageNames())
}

func TestSchemaLoader_GroupedDependencies(t *testing.T) {
	t.Parallel()

	s := newPackageSet().
		add("Z", domain.PackageMetadata{Dependencies: []string{"X"}}).
		add("X", domain.PackageMetadata{GroupedDependencies: []string{"Y"}}).
		add("Y", domain.PackageMetadata{})
	cfg := &domain.ProjectConfig{Roots: roots, PluginPackages: []string{"Z"}}

	loader, paths := newSchemaLoader(t, s, cfg)
	schema, err := loader.LoadSchema(paths)
	require.NoError(t, err)

	z, _ := schema.Package("Z")
	assert.Contains(t, z.ExplicitDependencies, "Y")
	assert.Equal(t, []string{"X", "Y"}, z.SortedDependencies())
}

func TestSchemaLoader_Cycle(t *testing.T) {
	t.Parallel()

	s := newPackageSet().
		add("A", domain.PackageMetadata{Dependencies: []string{"B"}}).
		add("B", domain.PackageMetadata{Dependencies: []string{"C"}}).
		add("C", domain.PackageMetadata{Dependencies: []string{"A"}})
	cfg := &domain.ProjectConfig{Roots: roots, PluginPackages: []string{"A"}}

	loader, paths := newSchemaLoader(t, s, cfg)
	schema, err := loader.LoadSchema(paths)
	require.ErrorIs(t, err, domain.ErrCircularDependency)
	assert.Nil(t, schema)
	assert.Equal(t, "A -> B -> C -> A", metadata(t, err)["cycle"])
}

func TestSchemaLoader_MissingDependency(t *testing.T) {
	t.Parallel()

	s := newPackageSet().add("App", domain.PackageMetadata{Dependencies: []string{"Missing"}})
	cfg := &domain.ProjectConfig{Roots: roots, PluginPackages: []string{"App"}}

	loader, paths := newSchemaLoader(t, s, cfg)
	schema, err := loader.LoadSchema(paths)
	require.ErrorIs(t, err, domain.ErrPackageNotFound)
	assert.Nil(t, schema)
	assert.Equal(t, "Missing", metadata(t, err)["package"])
}

func TestSchemaLoader_CustomProjectVisibility(t *testing.T) {
	t.Parallel()

	s := newPackageSet().
		add("App", domain.PackageMetadata{Dependencies: []string{"Tool"}}).
		add("Tool", domain.PackageMetadata{Dependencies: []string{"Log"}}).
		add("Log", domain.PackageMetadata{})
	cfg := &domain.ProjectConfig{
		Roots:                      roots,
		PluginPackages:             []string{"App"},
		CustomBuildProjectPatterns: []string{"Tool"},
	}

	loader, paths := newSchemaLoader(t, s, cfg)
	schema, err := loader.LoadSchema(paths)
	require.NoError(t, err)

	for _, name := range []string{"App", "Tool", "Log"} {
		r, _ := schema.Package(name)
		assert.True(t, r.GeneratesCustomBuildProject, name)
	}
}

func TestSchemaLoader_ConfigError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := quietLogger(ctrl)
	paths := domain.NewProjectPaths("/projects", "Game", domain.NewProjectTarget(domain.PlatformWindows, ""))

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().LoadProjectConfig(paths).Return(nil, domain.ErrProjectNotFound)

	l := resolver.NewSchemaLoader(
		loader,
		resolver.NewBuilder(mocks.NewMockPackageCatalog(ctrl), log),
		enforcer.New(mocks.NewMockFileSystem(ctrl), log),
		log,
	)
	schema, err := l.LoadSchema(paths)
	require.ErrorIs(t, err, domain.ErrProjectNotFound)
	assert.Nil(t, schema)
}
