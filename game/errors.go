package game

import "errors"

// Errors returned by the rule engines. Call sites wrap them with details, so
// callers should compare with errors.Is.
var (
	ErrIllegalMove            = errors.New("illegal move")
	ErrInvalidBoardDimensions = errors.New("invalid board dimensions")
	ErrMalformedNotation      = errors.New("malformed notation")
	ErrUnsupportedFeature     = errors.New("unsupported feature")
)
