// Package media defines the persisted catalog records (movies and
// multi-season series) and the pure path-derivation rules that map a
// persisted identifier to its canonical HLS playback and asset locations.
//
// Playback and thumbnail URLs are never supplied by the operator; they are
// derived from the owning identifier (plus season/episode numbers for
// episodes) once the record has been assigned an identifier. The same
// derivation also yields the remote filesystem directory the transcode
// pipeline writes into, which keeps the catalog and the generated file
// layout in lockstep.
//
// Treat this package as the single source of truth for the generated
// layout; anything that composes stream URLs or output directories must go
// through the Target helpers here.
package media
