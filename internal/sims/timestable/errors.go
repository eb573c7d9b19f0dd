package timestable

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidParameter is returned when a setter receives a value outside its
// contract. The animation state is left unchanged.
var ErrInvalidParameter = errors.New("invalid parameter")

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
