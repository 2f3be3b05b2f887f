package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	ReadFileError
	WriteFileError
	CopyFileError

	// Logging errors
	CreateLogFileError

	// Taxdump parsing errors
	MalformedRecordError

	// Cache build errors
	CyclicMergeError
	CyclicLineageError
	UnknownTaxonIDError

	// Cache persistence errors
	CorruptCacheError

	// Dataset scanning errors
	DatasetScanError

	// Export errors
	ExportError

	// Lookup errors
	InvalidBioClassError
)
