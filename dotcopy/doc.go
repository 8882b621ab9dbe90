// Package dotcopy installs dotfiles listed in a manifest.
//
// A manifest line `vimrc .vimrc` copies SourceRoot/vimrc to DestRoot/.vimrc,
// creating missing destination directories and overwriting an existing file.
// The first failing line aborts the run; files copied before it stay in place.
package dotcopy
