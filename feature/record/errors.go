package record

import "fmt"

// ValidationError reports malformed input: an undecodable model payload, a
// filename without a section prefix, or a results value that is neither a
// string nor a list of strings.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a reference that could not be resolved and cannot be
// skipped, such as the section of an uploaded image.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// StorageError reports a blob-store failure while storing a single file.
// The surrounding database transaction is rolled back; blobs written earlier
// in the same call may be orphaned and are tolerated.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure for %q: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
