// Package scaffold generates the on-disk layout of a new course. It powers
// the "coursekit create" command: one directory tree per course, a
// metadata.json record, a Markdown document per lesson rendered from an
// embedded template, and a placeholder quiz per lesson. Every JSON document
// it writes is checked against the embedded schemas before returning.
package scaffold
