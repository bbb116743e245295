package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.trai.ch/weave/internal/core/domain"
)

// Environment variables read into domain.Settings.
const (
	EnvProjectsDir        = "WEAVE_PROJECTS_DIR"
	EnvEditorPath         = "WEAVE_EDITOR_PATH"
	EnvEditorHubDir       = "WEAVE_EDITOR_HUB_DIR"
	EnvBuildTool          = "WEAVE_BUILD_TOOL"
	EnvDefaultSettingsDir = "WEAVE_DEFAULT_SETTINGS_DIR"
	EnvCommandTimeout     = "WEAVE_COMMAND_TIMEOUT"
	EnvLockRetries        = "WEAVE_LOCK_RETRIES"
	EnvLockBackoff        = "WEAVE_LOCK_BACKOFF"
	EnvDefaultProject     = "WEAVE_DEFAULT_PROJECT"
	EnvProjectAliases     = "WEAVE_PROJECT_ALIASES"
)

// LookupFunc reads one environment variable.
type LookupFunc func(key string) (string, bool)

// LoadSettings reads tool settings from the environment layered over an optional dotenv file.
// Variables already set in the environment win over the file.
func LoadSettings(envFile string, lookupEnv LookupFunc) (*domain.Settings, error) {
	fileValues := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileValues = values
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, domain.Annotate(domain.ErrConfigParseFailed, "path", envFile, "cause", err.Error())
		}
	}

	get := func(key string) (string, bool) {
		if v, ok := lookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := fileValues[key]
		return v, ok && v != ""
	}

	s := domain.DefaultSettings()
	if v, ok := get(EnvProjectsDir); ok {
		s.ProjectsDir = v
	}
	if v, ok := get(EnvEditorPath); ok {
		s.EditorPath = v
	}
	if v, ok := get(EnvEditorHubDir); ok {
		s.EditorHubDir = v
	}
	if v, ok := get(EnvBuildTool); ok {
		s.BuildToolPath = v
	}
	if v, ok := get(EnvDefaultSettingsDir); ok {
		s.DefaultSettingsDir = v
	}

	if v, ok := get(EnvDefaultProject); ok {
		s.DefaultProject = v
	}
	if v, ok := get(EnvProjectAliases); ok {
		aliases, err := parseAliases(v)
		if err != nil {
			return nil, err
		}
		s.ProjectAliases = aliases
	}

	if v, ok := get(EnvCommandTimeout); ok {
		d, err := parsePositiveDuration(EnvCommandTimeout, v)
		if err != nil {
			return nil, err
		}
		s.CommandTimeout = d
	}
	if v, ok := get(EnvLockBackoff); ok {
		d, err := parsePositiveDuration(EnvLockBackoff, v)
		if err != nil {
			return nil, err
		}
		s.LockRetry.Backoff = d
	}
	if v, ok := get(EnvLockRetries); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, domain.Annotate(domain.ErrInvalidSetting, "setting", EnvLockRetries, "value", v)
		}
		s.LockRetry.Attempts = n
	}

	return &s, nil
}

// LoadSettingsFromEnv reads settings from the process environment and the .env file of the working directory.
func LoadSettingsFromEnv() (*domain.Settings, error) {
	return LoadSettings(domain.EnvFileName, os.LookupEnv)
}

func parsePositiveDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, domain.Annotate(domain.ErrInvalidSetting, "setting", key, "value", value)
	}
	return d, nil
}

// parseAliases reads a comma separated list of alias=project pairs.
func parseAliases(value string) (map[string]string, error) {
	aliases := make(map[string]string)
	for pair := range strings.SplitSeq(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		alias, project, ok := strings.Cut(pair, "=")
		alias, project = strings.TrimSpace(alias), strings.TrimSpace(project)
		if !ok || alias == "" || project == "" {
			return nil, domain.Annotate(domain.ErrInvalidSetting, "setting", EnvProjectAliases, "value", pair)
		}
		aliases[alias] = project
	}
	return aliases, nil
}
