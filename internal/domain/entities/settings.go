package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxDepth       = 25
	DefaultVCS            = "git"
	DefaultLegacyPrefix   = "py-dependencies"
	DefaultLegacyFilename = "dependencies.log"
)

// Settings is the optional cihelper configuration file.
type Settings struct {
	GitHub    GitHubSettings   `yaml:"github"`
	History   HistorySettings  `yaml:"history"`
	Locate    LocateSettings   `yaml:"locate"`
	Artifacts ArtifactSettings `yaml:"artifacts"`
}

// GitHubSettings configures access to the source-hosting API.
type GitHubSettings struct {
	Token  string `yaml:"token"`   // Inline, ${ENV_VAR}, or file path
	APIURL string `yaml:"api_url"` // GitHub Enterprise base URL; empty for github.com
}

// HistorySettings configures the commit-history walk.
type HistorySettings struct {
	MaxDepth       int    `yaml:"max_depth"`
	VCS            string `yaml:"vcs"` // "git" or "gogit"
	LegacyPrefix   string `yaml:"legacy_prefix"`
	LegacyFilename string `yaml:"legacy_filename"`
}

// LocateSettings configures how an exhausted search is reported.
type LocateSettings struct {
	NotFound string `yaml:"not_found"` // "fail" or "assume-new"
}

// ArtifactSettings configures artifact selection.
type ArtifactSettings struct {
	Name string `yaml:"name"` // empty accepts every artifact name
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() *Settings {
	return &Settings{
		History: HistorySettings{
			MaxDepth:       DefaultMaxDepth,
			VCS:            DefaultVCS,
			LegacyPrefix:   DefaultLegacyPrefix,
			LegacyFilename: DefaultLegacyFilename,
		},
		Locate: LocateSettings{NotFound: string(NotFoundFail)},
	}
}

// NewSettings reads and parses a configuration file on top of the defaults,
// expanding environment variables and resolving token file paths.
func NewSettings(path string, log logger.FieldLogger) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.GitHub.Token = resolveToken(settings.GitHub.Token, log)

	if validateErr := validateSettings(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// LoadSettings loads the given file, or the first file found in the default
// locations, falling back to DefaultSettings when none exists.
func LoadSettings(path string, log logger.FieldLogger) (*Settings, error) {
	if path != "" {
		return NewSettings(path, log)
	}

	found, err := FindConfigFile()
	if err != nil {
		log.Debugf("No config file found, using defaults: %v", err)
		return DefaultSettings(), nil
	}

	log.Debugf("Using config file: %s", found)
	return NewSettings(found, log)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".cihelper.yaml",
		".cihelper.yml",
		"cihelper.yaml",
		"cihelper.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolveGitHubToken picks the first non-empty token from the flag, the
// settings file, GITHUB_TOKEN and GH_TOKEN.
func ResolveGitHubToken(flagToken string, settings *Settings) (string, error) {
	if flagToken != "" {
		return flagToken, nil
	}
	if settings != nil && settings.GitHub.Token != "" {
		return settings.GitHub.Token, nil
	}
	if t := os.Getenv("GITHUB_TOKEN"); t != "" {
		return t, nil
	}
	if t := os.Getenv("GH_TOKEN"); t != "" {
		return t, nil
	}
	return "", ErrMissingCredential
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string, log logger.FieldLogger) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		log.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			log.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		log.Debugf("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

func validateSettings(settings *Settings) error {
	if settings.History.MaxDepth <= 0 {
		return fmt.Errorf("history.max_depth must be positive, got %d", settings.History.MaxDepth)
	}
	switch settings.History.VCS {
	case "git", "gogit":
	default:
		return fmt.Errorf("history.vcs must be \"git\" or \"gogit\", got %q", settings.History.VCS)
	}
	if settings.History.LegacyPrefix != "" && settings.History.LegacyFilename == "" {
		return errors.New("history.legacy_filename is required when history.legacy_prefix is set")
	}
	if _, err := ParseNotFoundPolicy(settings.Locate.NotFound); err != nil {
		return fmt.Errorf("locate.not_found: %w", err)
	}
	return nil
}
