// Package config loads, normalizes, and validates hlsmill configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// SSH_HOST and MONGO_URI so the tool keeps working in deployments that
// configure it purely through the process environment. The Config type
// centralizes every knob the CLI needs: catalog connection, remote host
// credentials, and the remote upload/output roots the transcode pipeline
// resolves paths against.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
