package service

import "errors"

// Sentinel errors for the API error taxonomy. Handlers translate these to
// HTTP statuses; services wrap them with context via fmt.Errorf("%w: ...").
var (
	// ErrNotFound — an id-keyed operation referenced a row that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict — natural-key uniqueness violation: a non-deleted row with
	// the same name already exists, or a concurrent create won the race at
	// commit time. Clients may offer "use existing" as a remedy.
	ErrConflict = errors.New("already exists")

	// ErrUnsupportedFormat — the uploaded file is not a readable .xlsx.
	// Rejected before touching storage.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrImportFailed — storage-level failure while committing an import
	// batch. The whole file was rolled back; no orders persist.
	ErrImportFailed = errors.New("import failed")
)
