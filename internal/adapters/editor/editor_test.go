package editor_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/adapters/config"
	"go.trai.ch/weave/internal/adapters/editor"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const root = "/work"

func editorExe() string {
	if runtime.GOOS == "windows" {
		return "Unity.exe"
	}
	return "Unity"
}

func androidPaths() domain.ProjectPaths {
	return domain.NewProjectPaths("/work/projects", "Game", domain.NewProjectTarget(domain.PlatformAndroid, ""))
}

func newEditor(t *testing.T, files fstest.MapFS, settings *domain.Settings) (*editor.Editor, *mocks.MockCommandRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return editor.New(runner, log, config.NewMapFSAdapter(root, files), settings), runner
}

func TestBuildTarget(t *testing.T) {
	t.Parallel()

	want := map[domain.Platform]string{
		domain.PlatformWindows: "win64",
		domain.PlatformAndroid: "android",
		domain.PlatformWebGL:   "WebGl",
		domain.PlatformOSX:     "osx",
		domain.PlatformLinux:   "linux",
		domain.PlatformIOS:     "ios",
		domain.PlatformUWP:     "wsaplayer",
		domain.PlatformLumin:   "Lumin",
	}
	for _, p := range domain.AllPlatforms() {
		assert.Equal(t, want[p], editor.BuildTarget(p), p)
	}
}

func TestEditor_Locate_PinnedVersion(t *testing.T) {
	t.Parallel()

	e, _ := newEditor(t, fstest.MapFS{
		"projects/Game/Game-android/ProjectSettings/ProjectVersion.txt": {Data: []byte("m_EditorVersion: 2021.3.4f1\nm_EditorVersionWithRevision: 2021.3.4f1 (abc)\n")},
		"hub/2021.3.4f1/Editor/" + editorExe():                          {Data: []byte("bin")},
	}, &domain.Settings{EditorHubDir: "/work/hub", EditorPath: "/fallback/editor"})

	exe, err := e.Locate(androidPaths())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/work/hub", "2021.3.4f1", "Editor", editorExe()), exe)
}

func TestEditor_Locate_Fallback(t *testing.T) {
	t.Parallel()

	e, _ := newEditor(t, fstest.MapFS{
		"projects/Game/Game-android/ProjectSettings/ProjectVersion.txt": {Data: []byte("m_EditorVersion: 2030.1.0f1\n")},
	}, &domain.Settings{EditorHubDir: "/work/hub", EditorPath: "/fallback/editor"})

	exe, err := e.Locate(androidPaths())
	require.NoError(t, err)
	assert.Equal(t, "/fallback/editor", exe)
}

func TestEditor_Locate_NotFound(t *testing.T) {
	t.Parallel()

	e, _ := newEditor(t, fstest.MapFS{}, &domain.Settings{})
	_, err := e.Locate(androidPaths())
	require.ErrorIs(t, err, domain.ErrEditorNotFound)
}

func TestEditor_RegenerateProjects(t *testing.T) {
	t.Parallel()

	e, runner := newEditor(t, fstest.MapFS{}, &domain.Settings{EditorPath: "/opt/editor"})
	paths := androidPaths()

	runner.EXPECT().Run(gomock.Any(), ports.Command{
		Args: []string{
			"/opt/editor", "-quit", "-batchmode", "-nographics",
			"-buildTarget", "android",
			"-projectPath", paths.PlatformRoot(),
			"-executeMethod", editor.RegenerateMethod,
		},
		Dir: paths.ProjectRoot(),
	}).Return(nil)

	require.NoError(t, e.RegenerateProjects(context.Background(), paths))
}

func TestMSBuild_Build(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	solution := filepath.FromSlash("/work/projects/Game/Game-windows.sln")

	runner.EXPECT().Run(gomock.Any(), ports.Command{
		Args: []string{"msbuild", "/p:Configuration=Release", solution},
		Dir:  filepath.Dir(solution),
	}).Return(nil)
	runner.EXPECT().Run(gomock.Any(), ports.Command{
		Args: []string{"msbuild", "/p:Configuration=Debug", solution},
		Dir:  filepath.Dir(solution),
	}).Return(domain.ErrCommandFailed)

	b := editor.NewMSBuild(runner, "msbuild")
	require.NoError(t, b.Build(context.Background(), solution, "Release"))
	require.ErrorIs(t, b.Build(context.Background(), solution, ""), domain.ErrCommandFailed)

	err := editor.NewMSBuild(runner, "").Build(context.Background(), solution, "Debug")
	require.ErrorIs(t, err, domain.ErrBuildToolNotConfigured)
}
