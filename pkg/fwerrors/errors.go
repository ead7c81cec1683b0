package fwerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrRead indicates an error occurred while reading.
	ErrRead = errors.New("read")

	// ErrReadFile indicates an error occurred while reading a file.
	ErrReadFile = fmt.Errorf("%w file", ErrRead)

	// ErrWrite indicates an error occurred while writing.
	ErrWrite = errors.New("write")

	// ErrWriteFile indicates an error occurred while writing a file.
	ErrWriteFile = fmt.Errorf("%w file", ErrWrite)

	// ErrInvalidFormat indicates an unexpected or invalid format was encountered.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrFileNotFound indicates a file wasn't found in the specified path.
	ErrFileNotFound = errors.New("file not found")

	// ErrResolvedOutsideRepo indicates a path resolved outside of the search root.
	ErrResolvedOutsideRepo = errors.New("file resolved to outside repository root")

	// ErrInvalidArguments indicates invalid arguments were provided.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrParseVersion indicates a version component is not an integer.
	ErrParseVersion = errors.New("parse version")

	// ErrNegativeVersion indicates a version component is below zero.
	ErrNegativeVersion = errors.New("negative version")

	// ErrMinorOutOfRange indicates a minor version that does not fit in two digits.
	ErrMinorOutOfRange = errors.New("minor version out of range")

	// ErrInvalidIdentifier indicates a constant name that is not a valid C identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrPatternNotFound indicates the version constant is missing from a source file.
	ErrPatternNotFound = errors.New("version constant not found")

	// ErrVersionMismatch indicates the metadata and source disagree on the version.
	ErrVersionMismatch = errors.New("version mismatch")
)
