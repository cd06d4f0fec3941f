package errlocal

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	messagePrefix = "message: "
	systemPrefix  = "system: "
	detailsPrefix = "details: "
)

type LocalError interface {
	error
	Message() string
	System() string
	Details() map[string]any
	Code() int
	Base() *BaseError
}

type BaseError struct {
	Msg        string         `json:"message,omitempty"`
	Sys        string         `json:"system,omitempty"`
	DetailsMap map[string]any `json:"details,omitempty"`
}

func newBase(msg, system string, details map[string]any) BaseError {
	return BaseError{
		Msg:        msg,
		Sys:        system,
		DetailsMap: details,
	}
}

func (e *BaseError) Error() string {
	b := strings.Builder{}
	if e.Msg != "" {
		b.WriteString(messagePrefix + e.Msg)
	}
	if e.Sys != "" {
		b.WriteByte(' ')
		b.WriteString(systemPrefix + e.Sys + " ")
	}
	if len(e.DetailsMap) > 0 {
		keys := make([]string, 0, len(e.DetailsMap))
		for key := range e.DetailsMap {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		b.WriteString(detailsPrefix)
		for _, key := range keys {
			b.WriteString(key + ": " + fmt.Sprintf("%v", e.DetailsMap[key]) + "\n")
		}
	}
	return b.String()
}

func (e *BaseError) Message() string {
	return e.Msg
}

func (e *BaseError) System() string {
	return e.Sys
}

func (e *BaseError) Details() map[string]any {
	return e.DetailsMap
}

func (e *BaseError) Code() int {
	return 500
}

func (e *BaseError) Base() *BaseError {
	return e
}

// Wrap keeps err as is when it already is a LocalError, otherwise it is
// reported as an internal error with msg.
func Wrap(err error, msg string, details map[string]any) error {
	if err == nil {
		return nil
	}

	var local LocalError
	if errors.As(err, &local) {
		return err
	}

	return NewErrInternal(msg, err.Error(), details)
}

func IsNotFound(err error) bool {
	var notFound *ErrNotFound
	return errors.As(err, &notFound)
}
