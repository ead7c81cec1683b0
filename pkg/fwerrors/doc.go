// Package fwerrors provides error definitions for firmware version updates.
//
// This package defines standardized sentinel errors so that every layer can
// wrap failures with context while callers still match them with [errors.Is].
package fwerrors
