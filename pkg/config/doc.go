// Package config handles configuration management for stashdot.
// Values are layered, later sources overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. .stashdot.toml or stashdot.toml in the dotfiles root
//  3. an explicit file given on the command line
//  4. STASHDOT_ environment variables, with "__" separating nested keys
//     (STASHDOT_BACKUP_ROOT, STASHDOT_LINK__COMMAND)
package config
