// Package ledger persists a local record of every transcode orchestration
// run in SQLite.
//
// The catalog record and the remote assets can legitimately diverge: a
// movie that saved successfully may still fail its remote transcode, and
// nothing rolls the catalog back. The ledger is the operator's view into
// that partial state; `hlsmill jobs` renders it. Jobs move through
// pending, session_opening, running, and one of succeeded or failed, with
// the failure message captured alongside.
//
// The database is transient bookkeeping, not an archive. Schema changes
// bump the version in schema.go; users delete the database to adopt the
// new schema.
package ledger
