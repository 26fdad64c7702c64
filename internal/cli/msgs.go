package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Archive conflicting dotfiles, then link packages"
	MsgRootUse         = "stashdot [package_name backup_folder]"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgConfigShort     = "Print the effective configuration as TOML"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgNothingMoved  = "No conflicts found."
	MsgLinkFailed    = "link failed for %s: %v"
	MsgVersionFormat = "stashdot version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
	MsgErrorFormat   = "Error: %v\n"
	MsgArgsUsage     = "expected no arguments, or <package_name> <backup_folder>; got %d argument(s)"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Read additional configuration from this TOML file"
	MsgFlagSource  = "Dotfiles directory holding the packages (default: current directory)"
	MsgFlagTarget  = "Directory the packages are linked into (default: home directory)"
	MsgFlagLink    = "Run the link tool after archiving, even in single-package mode"
	MsgFlagNoLink  = "Archive conflicts only, never run the link tool"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
