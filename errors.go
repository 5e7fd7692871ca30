package fixedpoint

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("fixedpoint")

// ErrParse is returned when a string does not represent a valid
// fixed-point number or does not fit the storage type. Malformed input
// and overflow are deliberately indistinguishable.
var ErrParse = errors.New("invalid fixed-point number")
