package domain

import "errors"

// ErrQuestionNotFound is returned by lookups outside the traversal core
// (stores, HTTP adapter) when an ID does not resolve to a question.
// The traversal core itself never errors; unknown IDs degrade there.
var ErrQuestionNotFound = errors.New("question not found")

// ErrSessionNotFound is returned when a response session ID cannot be
// found in a store.
var ErrSessionNotFound = errors.New("session not found")
