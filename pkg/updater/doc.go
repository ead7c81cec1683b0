// Package updater keeps a firmware metadata document and a source file
// constant on the same version.
//
// An [Updater] loads both files, applies the new version in memory, and then
// writes the metadata document followed by the source file. Both files are
// read before either is written, so a missing or unreadable file leaves both
// untouched. A failed second write is not rolled back.
package updater
