// Package calc exposes the string calculator as a service: request
// validation, result caching, bounded concurrent batches and the HTTP routes
// that serve them.
//
// Rejected inputs are not service errors. Add returns them inside the Result
// (see Result.Failure and Result.Err) so that they can be cached and reported
// per item in a batch. The error return is reserved for invalid requests
// (validator.ValidationErrors) and cancellation.
package calc
