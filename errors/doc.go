// Package errors defines CallError, the single error kind that crosses the
// REST call boundary.
//
// Configuration loads, connection setup, network sends and JSON decoding all
// fail with a *CallError whose Code names the stage that failed and whose
// Cause keeps the original error reachable through errors.As and errors.Unwrap.
package errors
