package xmp

import "errors"

var (
	// ErrInvalidDateTime indicates a date or time field outside its valid
	// range. Returned by the Date constructors.
	ErrInvalidDateTime = errors.New("xmp: invalid date-time field")

	// ErrInvalidRating indicates a star count outside the supported 0-5
	// domain. Returned by RatingFromStars.
	ErrInvalidRating = errors.New("xmp: invalid rating")
)
