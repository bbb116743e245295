// Package editor drives the engine editor and the solution build tool.
package editor

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/weave/internal/adapters/config"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
)

// RegenerateMethod is the editor entry point that regenerates IDE project files.
const RegenerateMethod = "Weave.Editor.SolutionGenerator.Generate"

const editorVersionPrefix = "m_EditorVersion:"

var _ ports.EditorInvoker = (*Editor)(nil)

var buildTargets = map[domain.Platform]string{
	domain.PlatformWindows: "win64",
	domain.PlatformAndroid: "android",
	domain.PlatformWebGL:   "WebGl",
	domain.PlatformOSX:     "osx",
	domain.PlatformLinux:   "linux",
	domain.PlatformIOS:     "ios",
	domain.PlatformUWP:     "wsaplayer",
	domain.PlatformLumin:   "Lumin",
}

// BuildTarget returns the editor's -buildTarget argument for a platform.
func BuildTarget(p domain.Platform) string {
	return buildTargets[p]
}

// Editor implements ports.EditorInvoker by running the editor in batch mode.
type Editor struct {
	runner   ports.CommandRunner
	logger   ports.Logger
	fs       config.FileSystem
	settings *domain.Settings
}

// New creates an Editor.
func New(runner ports.CommandRunner, logger ports.Logger, fsys config.FileSystem, settings *domain.Settings) *Editor {
	return &Editor{
		runner:   runner,
		logger:   logger,
		fs:       fsys,
		settings: settings,
	}
}

// RegenerateProjects opens the platform root in batch mode and runs the solution generator.
func (e *Editor) RegenerateProjects(ctx context.Context, paths domain.ProjectPaths) error {
	exe, err := e.Locate(paths)
	if err != nil {
		return err
	}

	return e.runner.Run(ctx, ports.Command{
		Args: []string{
			exe,
			"-quit",
			"-batchmode",
			"-nographics",
			"-buildTarget", BuildTarget(paths.Target().Platform),
			"-projectPath", paths.PlatformRoot(),
			"-executeMethod", RegenerateMethod,
		},
		Dir: paths.ProjectRoot(),
	})
}

// Locate returns the editor executable for a project. The version pinned in the project's
// settings is looked up in the editor hub directory first, then the configured fallback is used.
func (e *Editor) Locate(paths domain.ProjectPaths) (string, error) {
	version := e.pinnedVersion(paths)
	if version != "" && e.settings.EditorHubDir != "" {
		candidate := filepath.Join(e.settings.EditorHubDir, version, "Editor", executableName())
		if info, err := e.fs.Stat(candidate); err == nil && !info.IsDir() {
			e.logger.Info("using editor " + version + " found at " + candidate)
			return candidate, nil
		}
	}

	if e.settings.EditorPath == "" {
		return "", domain.Annotate(domain.ErrEditorNotFound,
			"version", version,
			"hub_dir", e.settings.EditorHubDir,
		)
	}
	e.logger.Debug("using fallback editor " + e.settings.EditorPath)
	return e.settings.EditorPath, nil
}

// pinnedVersion reads the editor version from ProjectSettings/ProjectVersion.txt of the platform root.
func (e *Editor) pinnedVersion(paths domain.ProjectPaths) string {
	data, err := e.fs.ReadFile(filepath.Join(paths.PlatformRoot(), filepath.FromSlash(domain.EditorVersionFile)))
	if err != nil {
		return ""
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if rest, ok := strings.CutPrefix(scanner.Text(), editorVersionPrefix); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

func executableName() string {
	if runtime.GOOS == "windows" {
		return "Unity.exe"
	}
	return "Unity"
}
