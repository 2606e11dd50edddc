package uri

import (
	"errors"
	"fmt"
)

// Sentinel errors identify the taxonomy of fatal parse failures. Use
// errors.Is to test against these regardless of the positional detail
// joined in by the parser.
var (
	ErrInvalidURI      = errors.New("invalid URI")
	ErrInvalidScheme   = errors.New("invalid scheme")
	ErrInvalidPercent  = errors.New("malformed percent-encoding")
	ErrInvalidHost     = errors.New("invalid host")
	ErrInvalidPort     = errors.New("invalid port")
	ErrInvalidUserInfo = errors.New("invalid userinfo")
	ErrInvalidPath     = errors.New("invalid path")
	ErrInvalidQuery    = errors.New("invalid query")
	ErrInvalidFragment = errors.New("invalid fragment")
)

// wrapf joins sentinel with a formatted detail message, preserving
// errors.Is against sentinel.
func wrapf(sentinel error, format string, args ...interface{}) error {
	return errors.Join(sentinel, fmt.Errorf(format, args...))
}
