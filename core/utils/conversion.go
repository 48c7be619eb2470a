package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToInt converts a decoded JSON value to int. Numbers, numeric strings and json.Number
// are accepted; anything else yields def.
func ToInt(val any, def int) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return def
		}
		return int(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
		return def
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
		return def
	default:
		return def
	}
}

// ToString returns val if it is a string, or def otherwise. Numbers are not formatted;
// a number where a string was expected is a shape mismatch.
func ToString(val any, def string) string {
	if s, ok := val.(string); ok {
		return s
	}
	return def
}

// ToBool converts a decoded JSON value to bool. It accepts booleans, 0/1 numbers and
// the strings "true", "false", "1", "0", "yes", "no"; anything else yields def.
func ToBool(val any, def bool) bool {
	switch v := val.(type) {
	case bool:
		return v
	case float64:
		switch v {
		case 1:
			return true
		case 0:
			return false
		}
		return def
	case json.Number:
		switch v.String() {
		case "1":
			return true
		case "0":
			return false
		}
		return def
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
		return def
	default:
		return def
	}
}
