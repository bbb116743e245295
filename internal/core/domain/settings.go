package domain

import "time"

// Default tool settings.
const (
	DefaultCommandTimeout = time.Hour
	DefaultLockRetries    = 10
	DefaultLockBackoff    = 5 * time.Second
	DefaultConfiguration  = "Debug"
)

// RetryPolicy bounds how often a locked resource is retried.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

// Settings are the tool-wide settings read from the environment.
type Settings struct {
	// ProjectsDir holds every project directory.
	ProjectsDir string
	// EditorPath is the fallback editor executable.
	EditorPath string
	// EditorHubDir holds per-version editor installs, as <dir>/<version>/Editor/<exe>.
	EditorHubDir string
	// BuildToolPath is the solution build tool executable.
	BuildToolPath string
	// DefaultSettingsDir is copied into new projects as their engine settings.
	DefaultSettingsDir string
	// DefaultProject is used when a command names no project.
	DefaultProject string
	// ProjectAliases maps short names to project directory names.
	ProjectAliases map[string]string
	// CommandTimeout bounds every external command.
	CommandTimeout time.Duration
	// LockRetry bounds directory removal.
	LockRetry RetryPolicy
}

// DefaultSettings returns settings with every default applied.
func DefaultSettings() Settings {
	return Settings{
		ProjectsDir:    ".",
		CommandTimeout: DefaultCommandTimeout,
		LockRetry: RetryPolicy{
			Attempts: DefaultLockRetries,
			Backoff:  DefaultLockBackoff,
		},
	}
}

// AliasOf returns the alias of a project, or "" when it has none. With several aliases
// for one project the lexically smallest wins.
func (s *Settings) AliasOf(project string) string {
	alias := ""
	for a, p := range s.ProjectAliases {
		if p == project && (alias == "" || a < alias) {
			alias = a
		}
	}
	return alias
}
