// Package metadata reads and rewrites firmware metadata documents
// (firmware.json).
//
// A [Document] keeps every top-level field as raw JSON in its original order,
// so rewriting the version leaves all other fields intact. Output is indented
// with two spaces.
package metadata
