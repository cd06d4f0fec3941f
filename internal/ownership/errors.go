package ownership

import (
	"net/http"

	"github.com/filetransfer/filetransfer_api/internal/errlocal"
)

// Kind names the precondition a transfer or revoke failed on.
type Kind string

const (
	KindFileNotFound      Kind = "FileNotFound"
	KindRecipientNotFound Kind = "RecipientNotFound"
	KindNotOwner          Kind = "NotOwner"
	KindNotOriginalOwner  Kind = "NotOriginalOwner"
	KindSelfTransfer      Kind = "SelfTransfer"
	KindNotTransferred    Kind = "NotTransferred"
)

// RuleError is a rejected ownership change. Details map the offending
// request field to its messages, the same shape validation errors use.
type RuleError struct {
	errlocal.BaseError
	Kind  Kind   `json:"kind"`
	Field string `json:"-"`
}

func newRuleError(kind Kind, field, msg string) *RuleError {
	return &RuleError{
		BaseError: errlocal.BaseError{
			Msg:        msg,
			Sys:        string(kind),
			DetailsMap: map[string]any{field: []string{msg}},
		},
		Kind:  kind,
		Field: field,
	}
}

var (
	ErrFileNotFound      = newRuleError(KindFileNotFound, "file_id", "File not found.")
	ErrNotOwner          = newRuleError(KindNotOwner, "file_id", "You can only transfer files you own.")
	ErrRecipientNotFound = newRuleError(KindRecipientNotFound, "to_user_id", "Recipient user not found.")
	ErrSelfTransfer      = newRuleError(KindSelfTransfer, "to_user_id", "You cannot transfer a file to yourself.")
	ErrNotOriginalOwner  = newRuleError(KindNotOriginalOwner, "file_id", "Only the original owner can revoke file transfers.")
	ErrNotTransferred    = newRuleError(KindNotTransferred, "file_id", "This file has not been transferred and cannot be revoked.")
)

func (e *RuleError) Code() int {
	return http.StatusBadRequest
}

func (e *RuleError) ErrorKind() string {
	return string(e.Kind)
}

// Is matches any RuleError of the same kind.
func (e *RuleError) Is(target error) bool {
	t, ok := target.(*RuleError)
	return ok && t.Kind == e.Kind
}
