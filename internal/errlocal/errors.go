package errlocal

import "net/http"

type ErrBadRequest struct {
	BaseError
}

func NewErrBadRequest(msg string, system string, details map[string]any) LocalError {
	return &ErrBadRequest{BaseError: newBase(msg, system, details)}
}

func (e *ErrBadRequest) Code() int {
	return http.StatusBadRequest
}

type ErrUnauthorized struct {
	BaseError
}

func NewErrUnauthorized(msg string, system string, details map[string]any) LocalError {
	return &ErrUnauthorized{BaseError: newBase(msg, system, details)}
}

func (e *ErrUnauthorized) Code() int {
	return http.StatusUnauthorized
}

type ErrForbidden struct {
	BaseError
}

func NewErrForbidden(msg string, system string, details map[string]any) LocalError {
	return &ErrForbidden{BaseError: newBase(msg, system, details)}
}

func (e *ErrForbidden) Code() int {
	return http.StatusForbidden
}

type ErrNotFound struct {
	BaseError
}

func NewErrNotFound(msg string, system string, details map[string]any) LocalError {
	return &ErrNotFound{BaseError: newBase(msg, system, details)}
}

func (e *ErrNotFound) Code() int {
	return http.StatusNotFound
}

type ErrConflict struct {
	BaseError
}

func NewErrConflict(msg string, system string, details map[string]any) LocalError {
	return &ErrConflict{BaseError: newBase(msg, system, details)}
}

func (e *ErrConflict) Code() int {
	return http.StatusConflict
}

type ErrInternal struct {
	BaseError
}

func NewErrInternal(msg string, system string, details map[string]any) LocalError {
	return &ErrInternal{BaseError: newBase(msg, system, details)}
}

func (e *ErrInternal) Code() int {
	return http.StatusInternalServerError
}
