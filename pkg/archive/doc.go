// Package archive moves conflicting entries out of the way before a
// package's dotfiles are linked into the target directory.
//
// For every dot-entry directly under a package's source directory, the
// same name is looked up in the target directory. Inside directories that
// are descended into, every entry is considered unless NestedDotfilesOnly
// is set:
//
//   - both sides are real directories: descend, mirroring the name into
//     the backup directory
//   - the target is a regular file or any symlink (including a symlink to
//     a directory): rename it into the backup directory
//   - anything else: leave it alone
//
// Moves are plain renames. A failure stops the walk; entries moved before
// the failure stay moved.
package archive
