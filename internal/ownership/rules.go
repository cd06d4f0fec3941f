package ownership

import "github.com/filetransfer/filetransfer_api/internal/models"

// CheckTransfer validates that requester may hand file over to recipient.
// A nil file or recipient means the lookup found nothing. Checks run in a
// fixed order and the first failure is returned.
func CheckTransfer(requester models.User, file *models.File, recipient *models.User) error {
	switch {
	case file == nil:
		return ErrFileNotFound
	case file.Owner.ID != requester.ID:
		return ErrNotOwner
	case recipient == nil || !recipient.IsActive:
		return ErrRecipientNotFound
	case recipient.ID == requester.ID:
		return ErrSelfTransfer
	}
	return nil
}

// CheckRevoke validates that requester may pull file back. Only the
// uploader can revoke and only while someone else holds the file.
func CheckRevoke(requester models.User, file *models.File) error {
	switch {
	case file == nil:
		return ErrFileNotFound
	case file.OriginalOwner.ID != requester.ID:
		return ErrNotOriginalOwner
	case !file.IsTransferred():
		return ErrNotTransferred
	}
	return nil
}
