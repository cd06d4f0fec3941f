package models

import (
	"time"

	"github.com/filetransfer/filetransfer_api/internal/database/sqlc/db"
	"github.com/google/uuid"
)

type Action string

const (
	ActionTransfer Action = "TRANSFER"
	ActionRevoke   Action = "REVOKE"
)

func (a Action) IsValid() bool {
	return a == ActionTransfer || a == ActionRevoke
}

// TransferRecord is one immutable ledger entry. Seq is strictly increasing
// in commit order and is what history listings sort on.
type TransferRecord struct {
	ID        uuid.UUID `json:"id"`
	Seq       int64     `json:"-"`
	File      File      `json:"file"`
	FromUser  User      `json:"from_user"`
	ToUser    User      `json:"to_user"`
	Action    Action    `json:"action"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (r *TransferRecord) Model(rec db.TransferRecord) {
	r.ID = rec.ID
	r.Seq = rec.Seq
	r.File = File{ID: rec.FileID}
	r.FromUser = User{ID: rec.FromUserID}
	r.ToUser = User{ID: rec.ToUserID}
	r.Action = Action(rec.Action)
	if rec.Notes != nil {
		r.Notes = *rec.Notes
	}
	r.Timestamp = rec.CreatedAt
}
