// Package paths resolves the project directory that firmware files are
// relative to.
package paths
