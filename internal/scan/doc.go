// Package scan discovers audio files under a folder and loads their
// tag records through the store.
//
// Scanning is extension-filtered, concurrent (bounded errgroup) and
// order-stable: items always come back sorted by path regardless of
// load completion order. Per-file load failures are collected, not
// fatal.
package scan
