package domain

import "go.trai.ch/zerr"

var (
	// ErrPackageNotFound is returned when a package name does not resolve against any search root.
	ErrPackageNotFound = zerr.New("package not found in any package root")

	// ErrDuplicatePackage is returned when the same package name is resolved twice in one graph.
	ErrDuplicatePackage = zerr.New("duplicate package")

	// ErrCircularDependency is returned when the package dependency graph contains a cycle.
	ErrCircularDependency = zerr.New("circular dependency detected")

	// ErrPackageInBothTiers is returned when a package is listed as both a plugin and an asset package.
	ErrPackageInBothTiers = zerr.New("package listed in both pluginPackages and assetPackages")

	// ErrUnknownFolderType is returned when a package declares an unrecognized folder type.
	ErrUnknownFolderType = zerr.New("unrecognized folder type")

	// ErrUnknownPlatform is returned when a platform name or alias is not recognized.
	ErrUnknownPlatform = zerr.New("unrecognized platform")

	// ErrInvalidProjectPattern is returned when a custom build project regex does not compile.
	ErrInvalidProjectPattern = zerr.New("invalid custom build project pattern")

	// ErrUnknownCustomProject is returned when a custom build project names a package that is not part of the schema.
	ErrUnknownCustomProject = zerr.New("custom build project is not included in pluginPackages or assetPackages")

	// ErrStructuralViolation is the parent of every fatal structural constraint failure.
	ErrStructuralViolation = zerr.New("structural constraint violation")

	// ErrPrebuiltHasSource is returned when a prebuilt-project package contains source files.
	ErrPrebuiltHasSource = zerr.Wrap(ErrStructuralViolation, "prebuilt project package contains source files")

	// ErrPrebuiltDependencyNotPrebuilt is returned when a prebuilt project depends on a package without a prebuilt project.
	ErrPrebuiltDependencyNotPrebuilt = zerr.Wrap(ErrStructuralViolation, "prebuilt project depends on a package that is not prebuilt")

	// ErrForcedTierViolation is returned when a package that forces plugin tier ends up in asset tier.
	ErrForcedTierViolation = zerr.Wrap(ErrStructuralViolation, "package must stay in plugin tier")

	// ErrLinkCollision is returned when a link path is occupied by something that is not a link.
	ErrLinkCollision = zerr.Wrap(ErrStructuralViolation, "link path is occupied by a real file or directory")

	// ErrLinkSourceMissing is returned when the settings or package manager directory of a project does not exist.
	ErrLinkSourceMissing = zerr.Wrap(ErrStructuralViolation, "link source directory does not exist")

	// ErrPackageDirMissing is returned when a resolved package's home directory no longer exists.
	ErrPackageDirMissing = zerr.Wrap(ErrStructuralViolation, "package directory does not exist")

	// ErrPlatformProjectInvalid is returned when a platform project package lacks its project descriptor.
	ErrPlatformProjectInvalid = zerr.Wrap(ErrStructuralViolation, "platform project package is missing project.properties")

	// ErrPrebuiltNameMismatch is returned when a prebuilt project descriptor is not named after its package.
	ErrPrebuiltNameMismatch = zerr.Wrap(ErrStructuralViolation, "prebuilt project must have the same name as its package")

	// ErrPrebuiltDescriptorMissing is returned when a prebuilt project descriptor file cannot be found.
	ErrPrebuiltDescriptorMissing = zerr.New("prebuilt project descriptor not found")

	// ErrPrebuiltDescriptorInvalid is returned when a prebuilt project descriptor cannot be parsed.
	ErrPrebuiltDescriptorInvalid = zerr.New("failed to parse prebuilt project descriptor")

	// ErrCommandFailed is returned when an external command exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCommandTimeout is returned when an external command exceeds its time budget.
	ErrCommandTimeout = zerr.New("command timed out")

	// ErrLockedResource is returned when a directory cannot be removed within the retry budget.
	ErrLockedResource = zerr.New("resource is locked by another process")

	// ErrLinkFailed is returned when the link primitive fails.
	ErrLinkFailed = zerr.New("failed to manage directory link")

	// ErrProjectNotFound is returned when a project directory does not exist.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrNoProjectSelected is returned when a command names no project and none can be chosen.
	ErrNoProjectSelected = zerr.New("no project given and no default project configured")

	// ErrOperationAborted is returned when the user declines a confirmation prompt.
	ErrOperationAborted = zerr.New("operation aborted")

	// ErrProjectExists is returned when creating a project that already exists.
	ErrProjectExists = zerr.New("project already exists")

	// ErrProjectNotInitialized is returned when a project platform has not been initialized.
	ErrProjectNotInitialized = zerr.New("project platform is not initialized")

	// ErrPackageAlreadyListed is returned when adding a package that the project config already lists.
	ErrPackageAlreadyListed = zerr.New("package is already listed in project config")

	// ErrConfigReadFailed is returned when a config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigWriteFailed is returned when a config file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrMissingConfigField is returned when a required config field is absent from every config layer.
	ErrMissingConfigField = zerr.New("missing required config field")

	// ErrInvalidSetting is returned when an environment setting has an invalid value.
	ErrInvalidSetting = zerr.New("invalid setting")

	// ErrEditorNotFound is returned when no editor executable can be located for a project.
	ErrEditorNotFound = zerr.New("editor executable not found")

	// ErrBuildToolNotConfigured is returned when a build is requested without a build tool.
	ErrBuildToolNotConfigured = zerr.New("build tool is not configured")
)

// Annotate wraps a sentinel error and attaches key/value metadata to the wrapper.
// The sentinel stays reachable through errors.Is.
func Annotate(sentinel error, kv ...any) error {
	err := zerr.Wrap(sentinel, "")
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		err = zerr.With(err, key, kv[i+1])
	}
	return err
}
