// Package config resolves ftrek settings from defaults, configuration files,
// environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/temirov/ftrek/internal/types"
	"github.com/temirov/ftrek/internal/utils"
)

// Configuration keys. The matching command-line flag replaces underscores with
// dashes and the matching environment variable is FTREK_<KEY>.
const (
	KeyGitignore     = "gitignore"
	KeyIncludeHidden = "include_hidden"
	KeyColor         = "color"
	KeyReportSkipped = "report_skipped"
	KeyVerbose       = "verbose"
	KeyCopy          = "copy"
)

const (
	errorWorkingDirectoryFormat   = "determine working directory: %w"
	errorResolvePathFormat        = "resolve configuration path %s: %w"
	errorStatConfigurationFormat  = "stat configuration %s: %w"
	errorConfigurationIsDirectory = "configuration path %s is a directory"
	errorReadConfigurationFormat  = "read configuration from %s: %w"
	errorBindFlagFormat           = "bind flag --%s: %w"
	errorInvalidBooleanFormat     = "invalid boolean value %q for %s; accepted values: %s"
	errorInvalidColorModeFormat   = "invalid color mode %q; accepted values: %s"

	flagWordSeparator = "-"
	keyWordSeparator  = "_"
)

var configurationKeys = []string{KeyGitignore, KeyIncludeHidden, KeyColor, KeyReportSkipped, KeyVerbose, KeyCopy}

var colorModes = []string{types.ColorModeAuto, types.ColorModeAlways, types.ColorModeNever}

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
	// Flags, when set, supplies the highest-precedence values. Only flags the
	// user changed override lower sources.
	Flags *pflag.FlagSet
}

// ApplicationConfiguration holds the resolved settings of one invocation.
type ApplicationConfiguration struct {
	Gitignore     bool
	IncludeHidden bool
	Color         string
	ReportSkipped bool
	Verbose       bool
	// Copy also places the plain rendered tree on the system clipboard.
	Copy bool
	// Files lists the configuration files that were read, lowest precedence first.
	Files []string
}

// FlagName returns the command-line flag bound to a configuration key.
func FlagName(key string) string {
	return strings.ReplaceAll(key, keyWordSeparator, flagWordSeparator)
}

// LoadApplicationConfiguration resolves the configuration. Sources are applied
// from lowest to highest precedence: defaults, the global file, the local or
// explicit file, FTREK_* environment variables, changed flags.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf(errorWorkingDirectoryFormat, err)
		}
		workingDirectory = currentDirectory
	}

	reader := viper.New()
	reader.SetDefault(KeyGitignore, false)
	reader.SetDefault(KeyIncludeHidden, false)
	reader.SetDefault(KeyColor, types.ColorModeAuto)
	reader.SetDefault(KeyReportSkipped, false)
	reader.SetDefault(KeyVerbose, false)
	reader.SetDefault(KeyCopy, false)

	var configurationFiles []string
	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
		merged, mergeErr := mergeConfigurationFromPath(reader, globalPath, false)
		if mergeErr != nil {
			return ApplicationConfiguration{}, mergeErr
		}
		if merged {
			configurationFiles = append(configurationFiles, globalPath)
		}
	}

	localPath, resolveErr := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveErr != nil {
		return ApplicationConfiguration{}, resolveErr
	}
	merged, mergeErr := mergeConfigurationFromPath(reader, localPath, options.ExplicitFilePath != "")
	if mergeErr != nil {
		return ApplicationConfiguration{}, mergeErr
	}
	if merged {
		configurationFiles = append(configurationFiles, localPath)
	}

	reader.SetEnvPrefix(utils.EnvironmentPrefix)
	reader.AutomaticEnv()

	if options.Flags != nil {
		for _, key := range configurationKeys {
			flag := options.Flags.Lookup(FlagName(key))
			if flag == nil {
				continue
			}
			if bindErr := reader.BindPFlag(key, flag); bindErr != nil {
				return ApplicationConfiguration{}, fmt.Errorf(errorBindFlagFormat, flag.Name, bindErr)
			}
		}
	}

	return decodeConfiguration(reader, configurationFiles)
}

func decodeConfiguration(reader *viper.Viper, configurationFiles []string) (ApplicationConfiguration, error) {
	configuration := ApplicationConfiguration{Files: configurationFiles}
	booleanTargets := map[string]*bool{
		KeyGitignore:     &configuration.Gitignore,
		KeyIncludeHidden: &configuration.IncludeHidden,
		KeyReportSkipped: &configuration.ReportSkipped,
		KeyVerbose:       &configuration.Verbose,
		KeyCopy:          &configuration.Copy,
	}
	for key, target := range booleanTargets {
		value, err := readBoolean(reader, key)
		if err != nil {
			return ApplicationConfiguration{}, err
		}
		*target = value
	}

	colorMode, err := ParseColorMode(reader.GetString(KeyColor))
	if err != nil {
		return ApplicationConfiguration{}, err
	}
	configuration.Color = colorMode
	return configuration, nil
}

// readBoolean reads key as text so that files and environment variables accept
// the same spellings as flags.
func readBoolean(reader *viper.Viper, key string) (bool, error) {
	rawValue := reader.GetString(key)
	value, recognized := utils.ParseBooleanLiteral(rawValue)
	if !recognized {
		return false, fmt.Errorf(errorInvalidBooleanFormat, rawValue, key, utils.BooleanLiteralsListing)
	}
	return value, nil
}

// ParseColorMode validates a color mode, case-insensitively.
func ParseColorMode(input string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, mode := range colorModes {
		if normalized == mode {
			return mode, nil
		}
	}
	return "", fmt.Errorf(errorInvalidColorModeFormat, input, strings.Join(colorModes, ", "))
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath == "" {
		return filepath.Join(workingDirectory, utils.ConfigFileName), nil
	}
	if filepath.IsAbs(explicitPath) {
		return explicitPath, nil
	}
	if workingDirectory == "" {
		absolute, err := filepath.Abs(explicitPath)
		if err != nil {
			return "", fmt.Errorf(errorResolvePathFormat, explicitPath, err)
		}
		return absolute, nil
	}
	return filepath.Join(workingDirectory, explicitPath), nil
}

// mergeConfigurationFromPath merges the file at path into reader. A missing
// file is skipped unless required. The boolean result reports whether the file was read.
func mergeConfigurationFromPath(reader *viper.Viper, path string, required bool) (bool, error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) && !required {
			return false, nil
		}
		return false, fmt.Errorf(errorStatConfigurationFormat, path, statErr)
	}
	if info.IsDir() {
		return false, fmt.Errorf(errorConfigurationIsDirectory, path)
	}

	reader.SetConfigFile(path)
	if readErr := reader.MergeInConfig(); readErr != nil {
		return false, fmt.Errorf(errorReadConfigurationFormat, path, readErr)
	}
	return true, nil
}
