// Package manifest parses and validates the JSON and YAML documents that make
// up a course on disk: metadata.json, per-lesson quiz files, and optional
// YAML course definitions that seed the scaffolder. Validation runs against
// JSON Schemas embedded in the binary.
package manifest
