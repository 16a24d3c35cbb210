package apperrors

import (
	"net/http"
)

/*
Factories for the domain errors the portfolio pipeline produces.
Backend failures (storage uploads, document writes, cache mirroring,
malformed inline file data) all collapse into one generic save error:
the cause is kept for logging but never shown to the user.
*/

// ErrNotFound converts a repository not-found (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrSaveFailed is the single user-visible failure for the save pipeline.
// Upload, decode, document-write and cache errors all map here.
func ErrSaveFailed(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "portfolio", "Failed to save portfolio", http.StatusBadGateway)
}

// ErrStorageFailed wraps an object-store failure outside the save pipeline.
func ErrStorageFailed(err error) *AppError {
	return Wrap(err, CodeStorageError, "storage", "Storage operation failed", http.StatusBadGateway)
}
