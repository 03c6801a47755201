package clix

import (
	"fmt"
	"strconv"
)

// Arg constrains the parameter types a typed command may declare. The set is
// closed: dispatch depends on every argument type having a total, fallible
// parse from a single token.
type Arg interface {
	bool | string |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// parseArg converts one token to T. An error means the token is not
// representable as T, which callers treat as a dispatch non-match rather
// than a user-facing failure.
func parseArg[T Arg](token string) (T, error) {
	var val T
	var err error
	switch out := any(&val).(type) {
	case *bool:
		*out, err = strconv.ParseBool(token)
	case *string:
		*out = token
	case *int:
		var n int64
		n, err = strconv.ParseInt(token, 10, 0)
		*out = int(n)
	case *int8:
		var n int64
		n, err = strconv.ParseInt(token, 10, 8)
		*out = int8(n)
	case *int16:
		var n int64
		n, err = strconv.ParseInt(token, 10, 16)
		*out = int16(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(token, 10, 32)
		*out = int32(n)
	case *int64:
		*out, err = strconv.ParseInt(token, 10, 64)
	case *uint:
		var n uint64
		n, err = strconv.ParseUint(token, 10, 0)
		*out = uint(n)
	case *uint8:
		var n uint64
		n, err = strconv.ParseUint(token, 10, 8)
		*out = uint8(n)
	case *uint16:
		var n uint64
		n, err = strconv.ParseUint(token, 10, 16)
		*out = uint16(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(token, 10, 32)
		*out = uint32(n)
	case *uint64:
		*out, err = strconv.ParseUint(token, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(token, 32)
		*out = float32(f)
	case *float64:
		*out, err = strconv.ParseFloat(token, 64)
	}
	return val, err
}

// typeName returns the help tag for T, like "<int>" or "<string>".
func typeName[T Arg]() string {
	var zero T
	return fmt.Sprintf("<%T>", zero)
}
