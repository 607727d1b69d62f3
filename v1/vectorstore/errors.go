package vectorstore

import (
	"errors"
	"fmt"
)

// Common store errors. Adapter errors wrap one of these sentinels so callers
// can classify failures with errors.Is without depending on backend types.
var (
	// ErrConfiguration is returned when required credentials or settings
	// are absent or empty. Surfaced before any connection attempt.
	ErrConfiguration = errors.New("vectorstore: invalid configuration")

	// ErrConnection is returned when the remote handshake or readiness
	// check fails. Never retried internally; callers decide.
	ErrConnection = errors.New("vectorstore: connection failed")

	// ErrClosed is returned when an operation is attempted on a closed
	// connection.
	ErrClosed = errors.New("vectorstore: connection is closed")

	// ErrSchema is returned when the remote store rejects a collection
	// definition. The remote's diagnostic is carried verbatim.
	ErrSchema = errors.New("vectorstore: schema rejected")

	// ErrInvalidParameter is returned for out-of-range query parameters,
	// rejected before any remote call is issued.
	ErrInvalidParameter = errors.New("vectorstore: invalid parameter")

	// ErrQuery is returned when the remote store fails to execute a query.
	ErrQuery = errors.New("vectorstore: query failed")

	// ErrIngest marks a total batch-write failure. The concrete error is
	// an *IngestError carrying the partial report.
	ErrIngest = errors.New("vectorstore: ingest failed")
)

// IngestError reports a total batch-write failure, e.g. a connection lost
// mid-batch. Report records how many records had already succeeded before the
// failure.
type IngestError struct {
	Report *BatchReport
	Err    error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("vectorstore: ingest failed after %d/%d records: %v",
		e.Report.Succeeded, e.Report.Submitted, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As chains.
func (e *IngestError) Unwrap() error {
	return e.Err
}

// Is matches ErrIngest so callers can classify without type-asserting.
func (e *IngestError) Is(target error) bool {
	return target == ErrIngest
}

// IsConfigurationError reports whether err is a configuration error.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsConnectionError reports whether err is a connection error.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnection)
}

// IsSchemaError reports whether err is a schema rejection.
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchema)
}

// IsInvalidParameterError reports whether err is an invalid-parameter error.
func IsInvalidParameterError(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

// IsIngestError reports whether err is a total ingest failure. The partial
// report is available via errors.As:
//
//	var ingestErr *vectorstore.IngestError
//	if errors.As(err, &ingestErr) {
//	    log.Printf("%d records made it", ingestErr.Report.Succeeded)
//	}
func IsIngestError(err error) bool {
	return errors.Is(err, ErrIngest)
}
