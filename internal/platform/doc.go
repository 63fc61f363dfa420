// Package platform provides cross-platform filesystem helpers: atomic file
// writes, directory creation, and permission management that degrades to a
// no-op on Windows.
package platform
