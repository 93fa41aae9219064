// Package main hosts the hlsmill CLI entrypoint and command graph.
//
// The Cobra-based command tree collects movie and series metadata through
// interactive forms, saves records to the MongoDB catalog, and drives remote
// ffmpeg transcode runs over SSH. It centralizes configuration resolution,
// logger setup, and single-run locking so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
