package apperror

import "errors"

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrEmptySessionID = errors.New("session id is empty")
	ErrUnknownAction  = errors.New("unknown action")
	ErrInvalidPayload = errors.New("invalid payload")
	ErrUnknownStorage = errors.New("unknown storage type")
)
