// Package ioutils provides small file-system helpers for bulktag.
package ioutils

import (
	"io"
	"os"
)

// CopyFile copies a file from src to dst.
//
// The destination is created with mode 0644, or truncated if it
// already exists. Used to back up an audio file before its tags are
// rewritten for the first time in a session.
//
// Example:
//
//	err := ioutils.CopyFile("/music/track.mp3", "/music/track.mp3.bak")
func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	return err
}

// EnsureDir creates a directory and all parents if they don't exist.
//
// Directories are created with mode 0755. An existing directory is
// not an error.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
