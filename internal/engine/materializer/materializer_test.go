//go:build !windows

package materializer_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/adapters/fs"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports/mocks"
	"go.trai.ch/weave/internal/engine/materializer"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type workspace struct {
	root     string
	paths    domain.ProjectPaths
	packages string
	cfg      *domain.ProjectConfig
	linker   *fs.Linker
}

func newWorkspace(t *testing.T) *workspace {
	t.Helper()

	root := t.TempDir()
	projects := filepath.Join(root, "projects")
	paths := domain.NewProjectPaths(projects, "Game", domain.NewProjectTarget(domain.PlatformWindows, ""))

	w := &workspace{
		root:     root,
		paths:    paths,
		packages: filepath.Join(root, "packages"),
		cfg: &domain.ProjectConfig{
			ProjectName:        "Game",
			EngineSettingsPath: filepath.Join(paths.ProjectRoot(), "ProjectSettings"),
			PackageManagerPath: filepath.Join(paths.ProjectRoot(), "Packages"),
		},
		linker: fs.NewLinker(),
	}
	require.NoError(t, os.MkdirAll(w.cfg.EngineSettingsPath, 0o750))
	require.NoError(t, os.MkdirAll(w.cfg.PackageManagerPath, 0o750))
	return w
}

func (w *workspace) home(name string) string {
	return filepath.Join(w.packages, name)
}

func (w *workspace) record(t *testing.T, name string, ft domain.FolderType, tier domain.Tier) *domain.PackageRecord {
	t.Helper()
	require.NoError(t, os.MkdirAll(w.home(name), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(w.home(name), "Source.txt"), []byte(name), 0o600))
	return &domain.PackageRecord{
		Name:          name,
		HomeDirectory: w.home(name),
		FolderType:    ft,
		Tier:          tier,
	}
}

func (w *workspace) schema(t *testing.T, records ...*domain.PackageRecord) *domain.ProjectSchema {
	t.Helper()
	g := domain.NewGraph()
	for _, r := range records {
		require.NoError(t, g.AddPackage(r))
	}
	require.NoError(t, g.ComputeClosures())
	return domain.NewProjectSchema(w.cfg, g, w.paths.Target())
}

func (w *workspace) materializer(t *testing.T) *materializer.Materializer {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	fsys := fs.NewFileSystem(fs.NewWalker(), domain.RetryPolicy{Attempts: 1})
	return materializer.New(fsys, w.linker, log)
}

// links returns every link under the platform root mapped to its target.
func (w *workspace) links(t *testing.T) map[string]string {
	t.Helper()
	out := make(map[string]string)
	err := filepath.WalkDir(w.paths.PlatformRoot(), func(path string, _ os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if w.linker.IsLink(path) {
			target, err := w.linker.Target(path)
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(w.paths.PlatformRoot(), path)
			if err != nil {
				return err
			}
			out[filepath.ToSlash(rel)] = target
		}
		return nil
	})
	require.NoError(t, err)
	return out
}

func TestPlan_OutputRoots(t *testing.T) {
	t.Parallel()

	w := newWorkspace(t)
	ctrl := gomock.NewController(t)
	// No expectations: planning must not touch the disk.
	m := materializer.New(mocks.NewMockFileSystem(ctrl), mocks.NewMockLinker(ctrl), mocks.NewMockLogger(ctrl))

	schema := w.schema(t,
		&domain.PackageRecord{Name: "Core", HomeDirectory: "/p/Core"},
		&domain.PackageRecord{Name: "Scenes", HomeDirectory: "/p/Scenes", Tier: domain.AssetTier},
		&domain.PackageRecord{Name: "Glue", HomeDirectory: "/p/Glue", FolderType: domain.FolderPlatformProject},
		&domain.PackageRecord{Name: "Jars", HomeDirectory: "/p/Jars", FolderType: domain.FolderPlatformLibraries},
		&domain.PackageRecord{Name: "Swift", HomeDirectory: "/p/Swift", FolderType: domain.FolderMobileLibrary},
		&domain.PackageRecord{Name: "Js", HomeDirectory: "/p/Js", FolderType: domain.FolderWebLibrary},
		&domain.PackageRecord{Name: "Videos", HomeDirectory: "/p/Videos", FolderType: domain.FolderStreamingAssets},
		&domain.PackageRecord{Name: "Icons", HomeDirectory: "/p/Icons", FolderType: domain.FolderEditorGizmos, Tier: domain.AssetTier},
	)

	plan, err := m.Plan(schema, w.paths)
	require.NoError(t, err)

	got := make(map[string]string)
	for _, e := range plan.Entries {
		rel, err := filepath.Rel(w.paths.PlatformRoot(), e.LinkPath)
		require.NoError(t, err)
		got[filepath.ToSlash(rel)] = e.Target
	}

	assert.Equal(t, map[string]string{
		"ProjectSettings":                  w.cfg.EngineSettingsPath,
		"Packages":                         w.cfg.PackageManagerPath,
		"Assets/Plugins/Core":              "/p/Core",
		"Assets/Scenes":                    "/p/Scenes",
		"Assets/Plugins/Android/Glue":      "/p/Glue",
		"Assets/Plugins/Android/libs/Jars": "/p/Jars",
		"Assets/Plugins/iOS/Swift":         "/p/Swift",
		"Assets/Plugins/WebGL/Js":          "/p/Js",
		"Assets/StreamingAssets/Videos":    "/p/Videos",
		"Assets/Gizmos/Icons":              "/p/Icons",
	}, got)

	assert.IsNonDecreasing(t, linkPaths(plan))
	assert.Equal(t, w.paths.PlatformRoot(), plan.PlatformRoot)
}

func metadata(t *testing.T, err error) map[string]any {
	t.Helper()
	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr), "expected *zerr.Error, got %T", err)
	return zErr.Metadata()
}

func linkPaths(plan *domain.LinkPlan) []string {
	out := make([]string, 0, len(plan.Entries))
	for _, e := range plan.Entries {
		out = append(out, e.LinkPath)
	}
	return out
}

func TestPlan_WithoutPackageManager(t *testing.T) {
	t.Parallel()

	w := newWorkspace(t)
	w.cfg.PackageManagerPath = ""
	ctrl := gomock.NewController(t)
	m := materializer.New(mocks.NewMockFileSystem(ctrl), mocks.NewMockLinker(ctrl), mocks.NewMockLogger(ctrl))

	plan, err := m.Plan(w.schema(t), w.paths)
	require.NoError(t, err)
	require.Len(t, plan.Entries, 1)
	assert.Equal(t, w.paths.ProjectSettingsLink(), plan.Entries[0].LinkPath)
}

func TestPlan_LinkInsideAnotherLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		records   []*domain.PackageRecord
		outer     string
		enclosing string
	}{
		{
			name: "plugin named after a platform folder",
			records: []*domain.PackageRecord{
				{Name: "Android", HomeDirectory: "/p/Android"},
				{Name: "NativeBridge", HomeDirectory: "/p/NativeBridge", FolderType: domain.FolderPlatformProject},
			},
			outer:     "Android",
			enclosing: "Assets/Plugins/Android",
		},
		{
			name: "asset named after the plugins folder",
			records: []*domain.PackageRecord{
				{Name: "Plugins", HomeDirectory: "/p/Plugins", Tier: domain.AssetTier},
				{Name: "Core", HomeDirectory: "/p/Core"},
			},
			outer:     "Plugins",
			enclosing: "Assets/Plugins",
		},
		{
			name: "asset named after the gizmos folder",
			records: []*domain.PackageRecord{
				{Name: "Gizmos", HomeDirectory: "/p/Gizmos", Tier: domain.AssetTier},
				{Name: "Icons", HomeDirectory: "/p/Icons", FolderType: domain.FolderEditorGizmos, Tier: domain.AssetTier},
			},
			outer:     "Gizmos",
			enclosing: "Assets/Gizmos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := newWorkspace(t)
			ctrl := gomock.NewController(t)
			m := materializer.New(mocks.NewMockFileSystem(ctrl), mocks.NewMockLinker(ctrl), mocks.NewMockLogger(ctrl))

			plan, err := m.Plan(w.schema(t, tt.records...), w.paths)
			require.ErrorIs(t, err, domain.ErrLinkCollision)
			assert.Nil(t, plan)
			meta := metadata(t, err)
			assert.Equal(t, tt.outer, meta["other_package"])
			assert.Equal(t, filepath.Join(w.paths.PlatformRoot(), tt.enclosing), meta["enclosing_link"])
		})
	}
}

func TestMaterialize_NestedLinksLeavePackagesUntouched(t *testing.T) {
	t.Parallel()

	w := newWorkspace(t)
	m := w.materializer(t)

	android := w.record(t, "Android", domain.FolderNormal, domain.PluginTier)
	bridge := w.record(t, "NativeBridge", domain.FolderPlatformProject, domain.PluginTier)

	for range 2 {
		_, err := m.Materialize(w.schema(t, android, bridge), w.paths)
		require.ErrorIs(t, err, domain.ErrLinkCollision)
	}

	entries, err := os.ReadDir(android.HomeDirectory)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Source.txt", entries[0].Name())
	assert.NoDirExists(t, w.paths.PlatformRoot())
}

func TestMaterialize_MissingLinkSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source func(w *workspace) string
	}{
		{name: "engine settings", source: func(w *workspace) string { return w.cfg.EngineSettingsPath }},
		{name: "package manager", source: func(w *workspace) string { return w.cfg.PackageManagerPath }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := newWorkspace(t)
			m := w.materializer(t)
			core := w.record(t, "Core", domain.FolderNormal, domain.PluginTier)

			_, err := m.Materialize(w.schema(t, core), w.paths)
			require.NoError(t, err)

			require.NoError(t, os.RemoveAll(tt.source(w)))

			plan, err := m.Materialize(w.schema(t, core), w.paths)
			require.ErrorIs(t, err, domain.ErrLinkSourceMissing)
			require.ErrorIs(t, err, domain.ErrStructuralViolation)
			assert.Nil(t, plan)
			assert.Equal(t, tt.source(w), metadata(t, err)["source"])
			assert.True(t, w.linker.IsLink(filepath.Join(w.paths.PluginsDir(), "Core")),
				"the previous tree stays in place")
		})
	}
}

func TestMaterialize_RemovedPackageLosesItsLink(t *testing.T) {
	t.Parallel()

	w := newWorkspace(t)
	m := w.materializer(t)

	core := w.record(t, "Core", domain.FolderNormal, domain.PluginTier)
	scenes := w.record(t, "Scenes", domain.FolderNormal, domain.AssetTier)

	_, err := m.Materialize(w.schema(t, core, scenes), w.paths)
	require.NoError(t, err)

	coreLink := filepath.Join(w.paths.PluginsDir(), "Core")
	require.True(t, w.linker.IsLink(coreLink))
	target, err := w.linker.Target(coreLink)
	require.NoError(t, err)
	assert.Equal(t, core.HomeDirectory, target)

	_, err = m.Materialize(w.schema(t, scenes), w.paths)
	require.NoError(t, err)

	assert.NoFileExists(t, coreLink)
	assert.DirExists(t, core.HomeDirectory, "package contents are never touched")
	assert.FileExists(t, filepath.Join(core.HomeDirectory, "Source.txt"))
	assert.Equal(t, map[string]string{
		"ProjectSettings": w.cfg.EngineSettingsPath,
		"Packages":        w.cfg.PackageManagerPath,
		"Assets/Scenes":   scenes.HomeDirectory,
	}, w.links(t))
}

func TestMaterialize_Idempotent(t *testing.T) {
	t.Parallel()

	w := newWorkspace(t)
	m := w.materializer(t)

	schema := w.schema(t,
		w.record(t, "Core", domain.FolderNormal, domain.PluginTier),
		w.record(t, "Glue", domain.FolderPlatformProject, domain.PluginTier),
		w.record(t, "Videos", domain.FolderStreamingAssets, domain.AssetTier),
	)

	first, err := m.Materialize(schema, w.paths)
	require.NoError(t, err)
	firstLinks := w.links(t)

	second, err := m.Materialize(schema, w.paths)
	require.NoError(t, err)

	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	assert.Equal(t, first.Entries, second.Entries)
	assert.Equal(t, firstLinks, w.links(t))
	assert.Len(t, firstLinks, 5)
}

func TestMaterialize_TeardownRemovesMetaFilesAndKeepsRealContent(t *testing.T) {
	t.Parallel()

	w := newWorkspace(t)
	m := w.materializer(t)

	core := w.record(t, "Core", domain.FolderNormal, domain.PluginTier)
	_, err := m.Materialize(w.schema(t, core), w.paths)
	require.NoError(t, err)

	coreLink := filepath.Join(w.paths.PluginsDir(), "Core")
	meta := coreLink + domain.MetaFileExt
	ownFile := filepath.Join(w.paths.AssetsDir(), "Readme.txt")
	require.NoError(t, os.WriteFile(meta, []byte("guid"), 0o600))
	require.NoError(t, os.WriteFile(ownFile, []byte("mine"), 0o600))

	_, err = m.Materialize(w.schema(t), w.paths)
	require.NoError(t, err)

	assert.NoFileExists(t, meta)
	assert.FileExists(t, ownFile)
	assert.FileExists(t, filepath.Join(core.HomeDirectory, "Source.txt"))
}

func TestMaterialize_Collision(t *testing.T) {
	t.Parallel()

	w := newWorkspace(t)
	m := w.materializer(t)

	occupied := filepath.Join(w.paths.PluginsDir(), "Core")
	require.NoError(t, os.MkdirAll(occupied, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(occupied, "Local.txt"), []byte("keep"), 0o600))

	plan, err := m.Materialize(w.schema(t, w.record(t, "Core", domain.FolderNormal, domain.PluginTier)), w.paths)
	require.ErrorIs(t, err, domain.ErrLinkCollision)
	require.ErrorIs(t, err, domain.ErrStructuralViolation)
	assert.Nil(t, plan)
	assert.FileExists(t, filepath.Join(occupied, "Local.txt"))
}

func TestInspect(t *testing.T) {
	t.Parallel()

	w := newWorkspace(t)
	m := w.materializer(t)

	core := w.record(t, "Core", domain.FolderNormal, domain.PluginTier)
	net := w.record(t, "Net", domain.FolderNormal, domain.PluginTier)
	schema := w.schema(t, core, net)

	drift, err := m.Inspect(schema, w.paths)
	require.NoError(t, err)
	assert.Len(t, drift.Missing, 4, "nothing is materialized yet")
	assert.NoDirExists(t, w.paths.PlatformRoot(), "inspection never writes")

	plan, err := m.Materialize(schema, w.paths)
	require.NoError(t, err)

	drift, err = m.Inspect(schema, w.paths)
	require.NoError(t, err)
	assert.True(t, drift.InSync())
	assert.Equal(t, plan.Fingerprint, drift.Fingerprint)

	netLink := filepath.Join(w.paths.PluginsDir(), "Net")
	require.NoError(t, w.linker.Remove(netLink))
	require.NoError(t, w.linker.Create(core.HomeDirectory, netLink))
	stray := filepath.Join(w.paths.PluginsDir(), "Old")
	require.NoError(t, w.linker.Create(core.HomeDirectory, stray))
	require.NoError(t, w.linker.Remove(filepath.Join(w.paths.PluginsDir(), "Core")))

	drift, err = m.Inspect(schema, w.paths)
	require.NoError(t, err)
	assert.False(t, drift.InSync())
	require.Len(t, drift.Missing, 1)
	assert.Equal(t, "Core", drift.Missing[0].Package)
	require.Len(t, drift.Stale, 1)
	assert.Equal(t, "Net", drift.Stale[0].Package)
	assert.Equal(t, []string{stray}, drift.Unexpected)
}
