package services

import "errors"

var (
	ErrIngredientNotFound = errors.New("ingredient not found in database")
	ErrInvalidImage       = errors.New("invalid or unreadable image file")
	ErrModelUnavailable   = errors.New("classification model unavailable")
	ErrHistoryDisabled    = errors.New("scan history is not configured")
)
