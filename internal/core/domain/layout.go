package domain

const (
	// ProjectConfigFileName is the name of the shared project configuration file.
	ProjectConfigFileName = "weave.yaml"

	// ProjectUserConfigFileName is the name of the per-user project configuration override.
	ProjectUserConfigFileName = "weave.user.yaml"

	// PackageConfigFileName is the name of the per-package configuration file.
	PackageConfigFileName = "weave.package.yaml"

	// EnvFileName is the name of the optional dotenv file holding tool settings.
	EnvFileName = ".env"

	// ProjectSettingsDirName is the name of the engine settings directory inside a platform root.
	ProjectSettingsDirName = "ProjectSettings"

	// PackagesDirName is the name of the package manager directory inside a platform root.
	PackagesDirName = "Packages"

	// AssetsDirName is the name of the asset directory inside a platform root.
	AssetsDirName = "Assets"

	// PluginsDirName is the name of the plugin directory inside the asset directory.
	PluginsDirName = "Plugins"

	// MetaFileExt is the extension of the editor's sidecar metadata files.
	MetaFileExt = ".meta"

	// SourceFileExt is the extension of source files that prebuilt packages must not contain.
	SourceFileExt = ".cs"

	// PlatformProjectDescriptor is the file every platform project package must contain.
	PlatformProjectDescriptor = "project.properties"

	// EditorVersionFile is the path, relative to a platform root, of the editor version marker.
	EditorVersionFile = ProjectSettingsDirName + "/ProjectVersion.txt"

	// CustomProjectRegexPrefix marks a custom build project entry as a regular expression.
	CustomProjectRegexPrefix = "/"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
