// Package course defines the course, lesson, and quiz records that the
// scaffolder writes to disk, along with the static defaults used when an
// author supplies only an identifier and a title.
package course
