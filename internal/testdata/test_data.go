package testdata

import (
	"time"

	"github.com/filetransfer/filetransfer_api/internal/database/sqlc/db"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/google/uuid"
)

var (
	CreatedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	NewUser = models.User{
		Username:       "new_user",
		Email:          "new@example.com",
		FirstName:      "New",
		LastName:       "User",
		HashedPassword: "hashed_password",
		Role:           models.RoleUser,
	}

	AliceID = uuid.MustParse("04ae379a-31a6-4b32-a6d7-f6cdd844f81a")
	Alice   = models.User{
		ID:             AliceID,
		Username:       "alice",
		Email:          "alice@example.com",
		FirstName:      "Alice",
		LastName:       "Archer",
		HashedPassword: "hashed_password_alice",
		Role:           models.RoleUser,
		IsActive:       true,
		CreatedAt:      CreatedAt,
		UpdatedAt:      CreatedAt,
	}

	BobID = uuid.MustParse("13ae379a-31a6-4b32-a6d7-f6cdd844f82b")
	Bob   = models.User{
		ID:             BobID,
		Username:       "bob",
		Email:          "bob@example.com",
		FirstName:      "Bob",
		LastName:       "Baker",
		HashedPassword: "hashed_password_bob",
		Role:           models.RoleUser,
		IsActive:       true,
		CreatedAt:      CreatedAt,
		UpdatedAt:      CreatedAt,
	}

	CarolID = uuid.MustParse("24ae379a-31a6-4b32-a6d7-f6cdd844f83c")
	Carol   = models.User{
		ID:             CarolID,
		Username:       "carol",
		Email:          "carol@example.com",
		FirstName:      "Carol",
		LastName:       "Cole",
		HashedPassword: "hashed_password_carol",
		Role:           models.RoleUser,
		IsActive:       true,
		CreatedAt:      CreatedAt,
		UpdatedAt:      CreatedAt,
	}

	InactiveUserID = uuid.MustParse("44ae379a-31a6-4b32-a6d7-f6cdd844f85e")
	InactiveUser   = models.User{
		ID:        InactiveUserID,
		Username:  "dave",
		Email:     "dave@example.com",
		Role:      models.RoleUser,
		IsActive:  false,
		CreatedAt: CreatedAt,
		UpdatedAt: CreatedAt,
	}

	AdminID = uuid.MustParse("54ae379a-31a6-4b32-a6d7-f6cdd844f86f")
	Admin   = models.User{
		ID:        AdminID,
		Username:  "admin",
		Email:     "admin@example.com",
		Role:      models.RoleAdmin,
		IsActive:  true,
		CreatedAt: CreatedAt,
		UpdatedAt: CreatedAt,
	}

	ReportID = uuid.MustParse("64ae379a-31a6-4b32-a6d7-f6cdd844f870")
	Report   = models.File{
		ID:            ReportID,
		Name:          "Quarterly report",
		ObjectKey:     AliceID.String() + "/files/" + ReportID.String() + "/report.pdf",
		Size:          2048,
		ContentType:   "application/pdf",
		Owner:         Alice,
		OriginalOwner: Alice,
		CreatedAt:     CreatedAt,
		UpdatedAt:     CreatedAt,
	}

	PhotoID = uuid.MustParse("74ae379a-31a6-4b32-a6d7-f6cdd844f871")
	Photo   = models.File{
		ID:            PhotoID,
		Name:          "Team photo",
		ObjectKey:     AliceID.String() + "/files/" + PhotoID.String() + "/team.png",
		Size:          1 << 20,
		ContentType:   "image/png",
		Owner:         Bob,
		OriginalOwner: Alice,
		CreatedAt:     CreatedAt,
		UpdatedAt:     CreatedAt,
	}

	TransferRecordID = uuid.MustParse("84ae379a-31a6-4b32-a6d7-f6cdd844f872")
	TransferRecord   = models.TransferRecord{
		ID:        TransferRecordID,
		Seq:       1,
		File:      Photo,
		FromUser:  Alice,
		ToUser:    Bob,
		Action:    models.ActionTransfer,
		Notes:     "for the newsletter",
		Timestamp: CreatedAt,
	}
)

// UserRow is the database row behind a fixture user.
func UserRow(u models.User) db.User {
	return db.User{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		HashedPassword: u.HashedPassword,
		Role:           string(u.Role),
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// FileRow is the database row behind a fixture file.
func FileRow(f models.File) db.File {
	return db.File{
		ID:              f.ID,
		Name:            f.Name,
		ObjectKey:       f.ObjectKey,
		Size:            f.Size,
		ContentType:     f.ContentType,
		OwnerID:         f.Owner.ID,
		OriginalOwnerID: f.OriginalOwner.ID,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

// TransferRow is the database row behind a fixture ledger entry.
func TransferRow(r models.TransferRecord) db.TransferRecord {
	var notes *string
	if r.Notes != "" {
		notes = &r.Notes
	}
	return db.TransferRecord{
		ID:         r.ID,
		Seq:        r.Seq,
		FileID:     r.File.ID,
		FromUserID: r.FromUser.ID,
		ToUserID:   r.ToUser.ID,
		Action:     string(r.Action),
		Notes:      notes,
		CreatedAt:  r.Timestamp,
	}
}
