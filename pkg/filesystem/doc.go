// Package filesystem provides filesystem implementations for stashdot.
//
// The OS implementation is what the archiver runs against. The afero
// implementation backs in-memory tests, where symlinks are only available
// if the underlying afero.Fs supports them.
package filesystem
