package service

import "errors"

// Sentinel errors. Controllers map these to HTTP status codes and the
// websocket bridge maps them to non-fatal error events.
var (
	ErrUnauthorized = errors.New("unauthorized")

	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomNameRequired   = errors.New("room name is required")
	ErrCodeSpaceExhausted = errors.New("could not allocate a unique room code")

	ErrEmptyMessage   = errors.New("message body is empty")
	ErrMessageTooLong = errors.New("message body exceeds the maximum length")

	ErrNameRequired = errors.New("display name is required")

	ErrNoTallies = errors.New("no tallies to remove")
)
