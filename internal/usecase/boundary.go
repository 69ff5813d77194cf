// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package usecase

import (
	"log/slog"
	"runtime/debug"
	"unicode/utf8"

	"lingopress/internal/models"
)

// Upper bounds for untrusted values written to logs.
const (
	maxLogID    = 36
	maxLogSlug  = 128
	maxLogParam = 32
	maxLogText  = 512
)

// Outcomes reported to a Recorder.
const (
	OutcomeSuccess  = "success"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeInternal = "internal_error"
)

// Recorder receives the outcome of every use-case call.
type Recorder interface {
	RecordUseCase(name, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordUseCase(string, string) {}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// boundary maps failures of one use case to application errors, logging
// and recording each outcome.
type boundary struct {
	name string
	log  *slog.Logger
	rec  Recorder
}

func newBoundary(name string, log *slog.Logger, rec Recorder) boundary {
	if log == nil {
		log = slog.Default()
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	return boundary{name: name, log: log.With("usecase", name), rec: rec}
}

func (b boundary) success() {
	b.rec.RecordUseCase(b.name, OutcomeSuccess)
}

// invalid reports malformed input. It is expected, so it logs at warn.
func (b boundary) invalid(id string, err error, attrs ...any) *Error {
	b.log.Warn("invalid input", append(attrs, "error", err)...)
	b.rec.RecordUseCase(b.name, OutcomeInvalid)
	return &Error{ID: id, Message: err.Error()}
}

// notFound is an expected outcome and is not logged as an error.
func (b boundary) notFound(id, msg string) *Error {
	b.rec.RecordUseCase(b.name, OutcomeNotFound)
	return &Error{ID: id, Message: msg}
}

// internal reports an unexpected failure with a stack trace.
func (b boundary) internal(id string, err error, attrs ...any) *Error {
	b.log.Error("unexpected failure", append(attrs, "error", err, "stack", string(debug.Stack()))...)
	b.rec.RecordUseCase(b.name, OutcomeInternal)
	return &Error{ID: id, Message: "internal error"}
}

// validation classifies a value-object error: the expected code maps to
// invalidID, anything else is internal.
func (b boundary) validation(err error, expected models.ErrorCode, invalidID, internalID string, attrs ...any) *Error {
	if models.IsCode(err, expected) {
		return b.invalid(invalidID, err, attrs...)
	}
	return b.internal(internalID, err, attrs...)
}
