// Package catalog persists media records in the MongoDB document store.
//
// Identifiers are assigned client-side at the moment of first persistence;
// derived stream and thumbnail URLs are populated immediately after the
// identifier exists and before the document is written, so no persisted
// record ever lacks them. Each record is written exactly once per
// invocation; there is no update or delete path.
//
// Connection bootstrap happens once at process start via Connect and fails
// the whole run on error. A save that fails after the transcode was
// requested is the collaborator's problem to report, not retry.
package catalog
