package utils

import "errors"

var (
	ErrSpotNotFound            = errors.New("spot not found")
	ErrSessionNotFound         = errors.New("session not found or expired")
	ErrInvalidInput            = errors.New("invalid input")
	ErrPredictionFailed        = errors.New("congestion prediction failed")
	ErrRecommendationFailed    = errors.New("alternative recommendation failed")
	ErrAlternativesUnavailable = errors.New("alternatives unavailable for current congestion level")
	ErrDatabaseError           = errors.New("database error")
)
