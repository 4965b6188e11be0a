package errors

import "net/http"

var (
	ErrCitizenNotFound = New(
		"CITIZEN_NOT_FOUND",
		"Citizen not found in this import",
		http.StatusNotFound,
	)

	ErrImportNotFound = New(
		"IMPORT_NOT_FOUND",
		"Import not found",
		http.StatusNotFound,
	)

	ErrValidationFailed = New(
		"VALIDATION_FAILED",
		"Request validation failed",
		http.StatusBadRequest,
	)

	ErrUnknownRelative = New(
		"UNKNOWN_RELATIVE",
		"Relative id does not exist in this import",
		http.StatusBadRequest,
	)

	ErrSelfRelative = New(
		"SELF_RELATIVE",
		"Citizen cannot be a relative of itself",
		http.StatusBadRequest,
	)

	ErrImportConflict = New(
		"IMPORT_CONFLICT",
		"Duplicate ids in import batch",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
