package utils

import (
	"math"
	"net/http"
	"strconv"
)

func GetQueryParam[T string | int](r *http.Request, key string, defaultVal T) T {
	qVal := r.URL.Query().Get(key)
	if qVal == "" {
		return defaultVal
	}
	var result T
	switch any(result).(type) {
	case string:
		return any(qVal).(T)
	case int:
		intVal, err := strconv.Atoi(qVal)
		if err != nil || intVal < 0 {
			return defaultVal
		}
		result = any(intVal).(T)
	}

	return result
}

// PageParams reads limit and offset from the query string. Limit falls back
// to defaultLimit when absent or zero and is capped at maxLimit.
func PageParams(r *http.Request, defaultLimit, maxLimit int) (limit, offset int32) {
	l := GetQueryParam(r, "limit", defaultLimit)
	if l == 0 {
		l = defaultLimit
	}
	if l > maxLimit {
		l = maxLimit
	}
	o := GetQueryParam(r, "offset", 0)
	if o > math.MaxInt32 {
		o = math.MaxInt32
	}

	return int32(l), int32(o)
}
