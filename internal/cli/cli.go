// Package cli provides the command line interface.
package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/ftrek/internal/config"
	"github.com/temirov/ftrek/internal/output"
	"github.com/temirov/ftrek/internal/services/clipboard"
	"github.com/temirov/ftrek/internal/types"
	"github.com/temirov/ftrek/internal/utils"
	"github.com/temirov/ftrek/internal/walk"
)

const (
	defaultDirectory     = "."
	rootUse              = utils.ApplicationName + " [DIRECTORY]"
	rootShortDescription = "print a directory tree"
	rootLongDescription  = `ftrek prints the directory tree under DIRECTORY (default ".").
Directories are shown in blue, symlinks in cyan and executables in green
when standard output is a terminal and NO_COLOR is not set.
Use --gitignore to leave out hidden entries and anything matched by
.gitignore, .ignore or .git/info/exclude files.`
	rootUsageExample = `  # Tree of the current directory
  ftrek

  # Tree of ./src honoring ignore files
  ftrek --gitignore src

  # Plain output even on a terminal
  ftrek --color never`
	versionTemplate = utils.ApplicationName + " version: {{.Version}}\n"

	configFlagName        = "config"
	configFlagDescription = "configuration file (default ./" + utils.ConfigFileName + ")"
	initFlagName          = "init"
	initFlagDescription   = "write a default configuration file (local or global) and exit"
	forceFlagName         = "force"
	forceFlagDescription  = "overwrite an existing configuration file with --init"

	gitignoreFlagDescription     = "skip hidden entries and paths matched by ignore files"
	includeHiddenFlagDescription = "keep hidden entries when --gitignore is set"
	colorFlagDescription         = "color output: auto, always or never"
	reportSkippedFlagDescription = "log entries skipped because they could not be read"
	verboseFlagDescription       = "log resolved configuration and traversal mode"
	copyFlagDescription          = "also copy the tree to the system clipboard"

	skippedEntryMessage          = "skipped unreadable entry"
	configurationResolvedMessage = "configuration resolved"
	renderingMessage             = "rendering tree"
	configurationWrittenMessage  = "configuration written"

	logFieldPath  = "path"
	logFieldRoot  = "root"
	logFieldMode  = "mode"
	logFieldFiles = "files"
	logFieldColor = "color"
)

// flagValues receives the parsed flags. Settings that can also come from
// configuration files are read back through the configuration loader.
type flagValues struct {
	configPath    string
	initTarget    string
	force         bool
	gitignore     bool
	includeHidden bool
	color         string
	reportSkipped bool
	verbose       bool
	copyEnabled   bool
}

// Dependencies are the collaborators of the root command. LogLevel is
// lowered to debug when verbose output is requested.
type Dependencies struct {
	Logger    *zap.Logger
	LogLevel  zap.AtomicLevel
	Clipboard clipboard.Copier
}

// Execute runs the ftrek application with the process arguments.
func Execute(logger *zap.Logger, logLevel zap.AtomicLevel) error {
	rootCommand := NewRootCommand(Dependencies{
		Logger:    logger,
		LogLevel:  logLevel,
		Clipboard: clipboard.NewService(),
	})
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	var values flagValues
	logger := dependencies.Logger

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		Version:       utils.GetApplicationVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if values.initTarget != "" {
				return runInit(logger, values)
			}

			configuration, loadErr := config.LoadApplicationConfiguration(config.LoadOptions{
				ExplicitFilePath: values.configPath,
				Flags:            command.Flags(),
			})
			if loadErr != nil {
				return loadErr
			}
			if configuration.Verbose {
				dependencies.LogLevel.SetLevel(zapcore.DebugLevel)
			}
			logger.Debug(configurationResolvedMessage,
				zap.Strings(logFieldFiles, configuration.Files),
				zap.Bool(config.KeyGitignore, configuration.Gitignore),
				zap.Bool(config.KeyIncludeHidden, configuration.IncludeHidden),
				zap.String(config.KeyColor, configuration.Color),
				zap.Bool(config.KeyReportSkipped, configuration.ReportSkipped),
				zap.Bool(config.KeyCopy, configuration.Copy),
			)

			root := defaultDirectory
			if len(arguments) == 1 {
				root = arguments[0]
			}
			colorEnabled := resolveColor(configuration.Color, command.OutOrStdout())
			if !configuration.Copy {
				return runTree(command.OutOrStdout(), root, configuration, colorEnabled, logger)
			}
			var captured strings.Builder
			if renderErr := runTree(io.MultiWriter(command.OutOrStdout(), &captured), root, configuration, colorEnabled, logger); renderErr != nil {
				return renderErr
			}
			return dependencies.Clipboard.Copy(captured.String())
		},
	}
	rootCommand.SetVersionTemplate(versionTemplate)

	flagSet := rootCommand.Flags()
	flagSet.StringVar(&values.configPath, configFlagName, "", configFlagDescription)
	flagSet.StringVar(&values.initTarget, initFlagName, "", initFlagDescription)
	registerBooleanFlag(flagSet, &values.force, forceFlagName, false, forceFlagDescription)
	registerBooleanFlag(flagSet, &values.gitignore, config.FlagName(config.KeyGitignore), false, gitignoreFlagDescription)
	registerBooleanFlag(flagSet, &values.includeHidden, config.FlagName(config.KeyIncludeHidden), false, includeHiddenFlagDescription)
	flagSet.StringVar(&values.color, config.FlagName(config.KeyColor), types.ColorModeAuto, colorFlagDescription)
	registerBooleanFlag(flagSet, &values.reportSkipped, config.FlagName(config.KeyReportSkipped), false, reportSkippedFlagDescription)
	registerBooleanFlag(flagSet, &values.verbose, config.FlagName(config.KeyVerbose), false, verboseFlagDescription)
	registerBooleanFlag(flagSet, &values.copyEnabled, config.FlagName(config.KeyCopy), false, copyFlagDescription)
	return rootCommand
}

func runInit(logger *zap.Logger, values flagValues) error {
	writtenPath, initErr := config.InitializeConfiguration(config.InitOptions{
		Target: config.InitTarget(values.initTarget),
		Force:  values.force,
	})
	if initErr != nil {
		return initErr
	}
	logger.Info(configurationWrittenMessage, zap.String(logFieldPath, writtenPath))
	return nil
}

// runTree renders root with the traversal selected by configuration.
func runTree(writer io.Writer, root string, configuration config.ApplicationConfiguration, colorEnabled bool, logger *zap.Logger) error {
	onSkip := newSkipReporter(logger, configuration.ReportSkipped)

	bufferedWriter := bufio.NewWriter(writer)
	renderer := output.NewRenderer(bufferedWriter, output.Options{Color: colorEnabled, OnSkip: onSkip})

	var renderErr error
	if configuration.Gitignore {
		logger.Debug(renderingMessage, zap.String(logFieldRoot, root), zap.String(logFieldMode, types.TraversalFiltered), zap.Bool(logFieldColor, colorEnabled))
		walker := walk.NewIgnoreWalker(walk.IgnoreWalkerOptions{
			IncludeHidden: configuration.IncludeHidden,
			OnSkip:        onSkip,
		})
		renderErr = renderer.RenderFlattened(root, walker)
	} else {
		logger.Debug(renderingMessage, zap.String(logFieldRoot, root), zap.String(logFieldMode, types.TraversalRecursive), zap.Bool(logFieldColor, colorEnabled))
		renderErr = renderer.RenderRecursive(root, walk.NewFileSystem(onSkip))
	}
	return errors.Join(renderErr, bufferedWriter.Flush())
}

// resolveColor decides styling once per invocation. In auto mode NO_COLOR wins
// and otherwise the writer must be a terminal.
func resolveColor(mode string, writer io.Writer) bool {
	switch mode {
	case types.ColorModeAlways:
		return true
	case types.ColorModeNever:
		return false
	}
	if utils.NoColorRequested() {
		return false
	}
	file, isFile := writer.(*os.File)
	return isFile && utils.IsTerminal(file)
}

func newSkipReporter(logger *zap.Logger, enabled bool) walk.SkipReporter {
	if !enabled {
		return nil
	}
	return func(path string, cause error) {
		logger.Warn(skippedEntryMessage, zap.String(logFieldPath, path), zap.Error(cause))
	}
}
