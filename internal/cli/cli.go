// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joechala/treegen/internal/config"
	"github.com/joechala/treegen/internal/output"
	"github.com/joechala/treegen/internal/parser"
	"github.com/joechala/treegen/internal/scaffold"
	"github.com/joechala/treegen/internal/services/clipboard"
	"github.com/joechala/treegen/internal/utils"
)

const (
	outputFlagName   = "output"
	dryFlagName      = "dry"
	fromFlagName     = "from"
	templateFlagName = "template"
	defaultFlagName  = "default"
	copyFlagName     = "copy"
	versionFlagName  = "version"
	globalFlagName   = "global"
	forceFlagName    = "force"

	versionTemplate        = "treegen version: %s\n"
	defaultOutputDirectory = "."

	rootUse              = "treegen [tokens...]"
	rootShortDescription = "generate directory and file structures"
	rootLongDescription  = `treegen creates directory and file scaffolds from a compact path notation,
a structure file, a saved template, or a built-in per-language default.
Tokens chain into one directory cursor; ":" starts an independent chain and
".." moves the cursor up one level. Names without a dot become directories,
everything else becomes an empty file.`
	// rootUsageExample demonstrates the generate flow.
	rootUsageExample = `  # A source directory with one file plus a top-level README
  treegen src main.rs : README.md

  # Preview first, create on confirmation
  treegen --dry --output ./app src main.py

  # Start from the built-in Python layout
  treegen --default python`

	outputFlagDescription   = "base output directory"
	dryFlagDescription      = "preview the tree and ask for confirmation before creating"
	fromFlagDescription     = "load tokens from a structure file"
	templateFlagDescription = "load tokens from a saved template"
	defaultFlagDescription  = "use the built-in structure for a language"
	copyFlagDescription     = "copy the rendered preview tree to the clipboard"
	versionFlagDescription  = "display application version"
	globalFlagDescription   = "write the global configuration file"
	forceFlagDescription    = "overwrite an existing configuration file"

	configUse                  = "config"
	configShortDescription     = "manage treegen configuration"
	configInitUse              = "init"
	configInitShortDescription = "write a default configuration file"
	configWrittenFormat        = "Configuration written to %s\n"

	templateUse                  = "template"
	templateShortDescription     = "manage saved templates"
	templateSaveUse              = "save <name> <tokens...>"
	templateSaveShortDescription = "save tokens as a named template"
	templateListUse              = "list"
	templateListShortDescription = "list saved templates"
	templateSavedFormat          = "Template saved to %s\n"

	confirmationPrompt       = "Would you like to create this structure? (y/n): "
	previewHeader            = "\nProject structure preview:\n"
	previewFooter            = "\n(No files created yet)\n"
	declinedMessage          = "Structure not created."
	proceedMessage           = "Proceeding to create directories and files...\n"
	successMessage           = "Structure created successfully!"
	errorCreatePathFormat    = "Error: failed to create %s: %v\n"
	warningClipboardFormat   = "Warning: failed to copy preview to clipboard: %v\n"
	errorEmptyPathSetMessage = "no valid paths to generate"
)

// generateOptions stores the flag values of the generate flow.
type generateOptions struct {
	outputDirectory string
	dryRun          bool
	structureFile   string
	templateName    string
	defaultLanguage string
	copyToClipboard bool
	withIcons       bool
}

// Execute runs the treegen application.
func Execute() error {
	rootCommand := createRootCommand(newLineConfirmer(os.Stdin, os.Stdout), clipboard.NewSystemCopier())
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command with injected confirmation
// and clipboard capabilities.
func createRootCommand(confirmer Confirmer, copier clipboard.Copier) *cobra.Command {
	var showVersion bool
	options := &generateOptions{withIcons: true}

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runGenerate(command, arguments, options, confirmer, copier)
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}

	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.Flags().StringVar(&options.outputDirectory, outputFlagName, defaultOutputDirectory, outputFlagDescription)
	rootCommand.Flags().BoolVar(&options.dryRun, dryFlagName, false, dryFlagDescription)
	rootCommand.Flags().StringVar(&options.structureFile, fromFlagName, "", fromFlagDescription)
	rootCommand.Flags().StringVar(&options.templateName, templateFlagName, "", templateFlagDescription)
	rootCommand.Flags().StringVar(&options.defaultLanguage, defaultFlagName, "", defaultFlagDescription)
	rootCommand.Flags().BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)

	rootCommand.AddCommand(
		createConfigCommand(),
		createTemplateCommand(),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// runGenerate resolves the input source, collects the path set, and either
// previews or materializes it.
func runGenerate(
	command *cobra.Command,
	arguments []string,
	options *generateOptions,
	confirmer Confirmer,
	copier clipboard.Copier,
) error {
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{})
	if configurationError != nil {
		return configurationError
	}
	applyConfigurationDefaults(command, options, applicationConfiguration.Generate)

	tokenGroups, resolveError := config.ResolveTokenGroups(config.InputSelection{
		TemplateName:    options.templateName,
		StructureFile:   options.structureFile,
		DefaultLanguage: options.defaultLanguage,
		Arguments:       arguments,
	})
	if resolveError != nil {
		return resolveError
	}

	pathSet := parser.CollectGroups(options.outputDirectory, tokenGroups)
	if pathSet.Len() == 0 {
		return fmt.Errorf(errorEmptyPathSetMessage)
	}
	sortedPaths := pathSet.SortedPaths()

	standardOutput := command.OutOrStdout()
	standardError := command.ErrOrStderr()
	renderedTree := output.RenderTree(options.outputDirectory, sortedPaths, output.Options{WithIcons: options.withIcons})

	if options.copyToClipboard {
		if copyError := copier.Copy(renderedTree); copyError != nil {
			fmt.Fprintf(standardError, warningClipboardFormat, copyError)
		}
	}

	if options.dryRun {
		fmt.Fprintf(standardOutput, "%s\n", previewHeader)
		fmt.Fprint(standardOutput, renderedTree)
		fmt.Fprintf(standardOutput, "%s\n", previewFooter)
		if !confirmer.Confirm(confirmationPrompt) {
			fmt.Fprintln(standardOutput, declinedMessage)
			return nil
		}
		fmt.Fprintf(standardOutput, "%s\n", proceedMessage)
	}

	creationFailures := scaffold.Apply(sortedPaths)
	for _, creationFailure := range creationFailures {
		fmt.Fprintf(standardError, errorCreatePathFormat, creationFailure.Path, creationFailure.Err)
	}
	fmt.Fprintln(standardOutput, successMessage)
	return nil
}

// applyConfigurationDefaults overlays configured defaults onto flags the
// user did not set explicitly.
func applyConfigurationDefaults(command *cobra.Command, options *generateOptions, defaults config.GenerateConfiguration) {
	flagSet := command.Flags()
	if !flagSet.Changed(outputFlagName) && defaults.Output != "" {
		options.outputDirectory = defaults.Output
	}
	if !flagSet.Changed(dryFlagName) && defaults.Dry != nil {
		options.dryRun = *defaults.Dry
	}
	if !flagSet.Changed(copyFlagName) && defaults.Copy != nil {
		options.copyToClipboard = *defaults.Copy
	}
	if defaults.Icons != nil {
		options.withIcons = *defaults.Icons
	}
}

// createConfigCommand returns the config subcommand.
func createConfigCommand() *cobra.Command {
	configCommand := &cobra.Command{
		Use:   configUse,
		Short: configShortDescription,
	}
	configCommand.AddCommand(createConfigInitCommand())
	return configCommand
}

// createConfigInitCommand returns the config init subcommand.
func createConfigInitCommand() *cobra.Command {
	var globalTarget bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:   configInitUse,
		Short: configInitShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if globalTarget {
				target = config.InitTargetGlobal
			}
			writtenPath, initializationError := config.InitializeConfiguration(config.InitOptions{
				Target: target,
				Force:  forceOverwrite,
			})
			if initializationError != nil {
				return initializationError
			}
			fmt.Fprintf(command.OutOrStdout(), configWrittenFormat, writtenPath)
			return nil
		},
	}

	initCommand.Flags().BoolVar(&globalTarget, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&forceOverwrite, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// createTemplateCommand returns the template subcommand.
func createTemplateCommand() *cobra.Command {
	templateCommand := &cobra.Command{
		Use:   templateUse,
		Short: templateShortDescription,
	}
	templateCommand.AddCommand(
		createTemplateSaveCommand(),
		createTemplateListCommand(),
	)
	return templateCommand
}

// createTemplateSaveCommand returns the template save subcommand.
func createTemplateSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   templateSaveUse,
		Short: templateSaveShortDescription,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(command *cobra.Command, arguments []string) error {
			savedPath, saveError := config.SaveTemplate(arguments[0], arguments[1:])
			if saveError != nil {
				return saveError
			}
			fmt.Fprintf(command.OutOrStdout(), templateSavedFormat, savedPath)
			return nil
		},
	}
}

// createTemplateListCommand returns the template list subcommand.
func createTemplateListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   templateListUse,
		Short: templateListShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			templateNames, listError := config.ListTemplates()
			if listError != nil {
				return listError
			}
			for _, templateName := range templateNames {
				fmt.Fprintln(command.OutOrStdout(), templateName)
			}
			return nil
		},
	}
}
