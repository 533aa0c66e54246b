// Package binder decodes HTTP request bodies into typed values for use with
// handler.Wrap.
//
// JSON is strict: the media type must be application/json, unknown fields are
// rejected, the body must hold exactly one JSON value and its size is capped
// (DefaultMaxJSONSize unless WithMaxSize is given). Failures wrap one of the
// package sentinels so callers can map them to HTTP statuses with errors.Is.
package binder
