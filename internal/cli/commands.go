package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/stashdot/internal/version"
	"github.com/arthur-debert/stashdot/pkg/archive"
	"github.com/arthur-debert/stashdot/pkg/config"
	"github.com/arthur-debert/stashdot/pkg/errors"
	"github.com/arthur-debert/stashdot/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootOptions holds the flag values shared by the commands
type rootOptions struct {
	verbosity  int
	configFile string
	sourceDir  string
	targetDir  string
	link       bool
	noLink     bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    validateArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStash(cmd, opts, args)
		},
		ValidArgsFunction: packageArgsCompletion(opts),
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.sourceDir, "source", "", MsgFlagSource)

	rootCmd.Flags().StringVar(&opts.targetDir, "target", "", MsgFlagTarget)
	rootCmd.Flags().BoolVar(&opts.link, "link", false, MsgFlagLink)
	rootCmd.Flags().BoolVar(&opts.noLink, "no-link", false, MsgFlagNoLink)
	rootCmd.MarkFlagsMutuallyExclusive("link", "no-link")

	_ = rootCmd.MarkPersistentFlagFilename("config", "toml")
	_ = rootCmd.MarkPersistentFlagDirname("source")
	_ = rootCmd.MarkFlagDirname("target")

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// validateArgs accepts the two invocation forms: no arguments for the
// configured package list, or a package name and a backup folder.
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return errors.Newf(errors.ErrInvalidInput, MsgArgsUsage, len(args))
	}
	return nil
}

// packageArgsCompletion completes package names from the source root for
// the first argument and directories for the backup folder.
func packageArgsCompletion(opts *rootOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		switch len(args) {
		case 0:
			sourceRoot, err := resolveSource(opts.sourceDir)
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			entries, err := os.ReadDir(sourceRoot)
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			var names []string
			for _, entry := range entries {
				if entry.IsDir() && !archive.IsDotEntry(entry.Name()) {
					names = append(names, entry.Name())
				}
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		case 1:
			return nil, cobra.ShellCompDirectiveFilterDirs
		default:
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sourceRoot, err := resolveSource(opts.sourceDir)
			if err != nil {
				return err
			}
			cfg, err := config.Load(config.LoadOptions{SourceRoot: sourceRoot, File: opts.configFile})
			if err != nil {
				return err
			}
			data, err := cfg.Render()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
