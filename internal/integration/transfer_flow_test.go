package integration_test

import (
	"io"
	"net/http"

	"github.com/filetransfer/filetransfer_api/internal/api/dto"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Transfer Flow E2E", Ordered, func() {
	var (
		alice, bob, carol *apiClient
		file              dto.FileResponse
		content           = []byte("quarterly numbers, do not share")
	)

	BeforeAll(func() {
		alice = registeredClient("alice")
		bob = registeredClient("bob")
		carol = registeredClient("carol")
	})

	It("uploads a file owned by its uploader", func() {
		file = alice.upload("Quarterly report", "report.txt", content)

		Expect(file.Owner.ID).To(Equal(alice.userID))
		Expect(file.OriginalOwner.ID).To(Equal(alice.userID))
		Expect(file.FileExtension).To(Equal(".txt"))
		Expect(file.FileSize).To(Equal(int64(len(content))))

		resp, body := alice.get("/my-files/")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(decodeInto[dto.MyFilesResponse](body).Count).To(Equal(1))
	})

	It("lists everyone else as a recipient", func() {
		resp, body := alice.get("/users/")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		recipients := decodeInto[dto.RecipientsResponse](body)
		var ids []uuid.UUID
		for _, u := range recipients.AvailableUsers {
			ids = append(ids, u.ID)
		}
		Expect(ids).To(ContainElements(bob.userID, carol.userID))
		Expect(ids).NotTo(ContainElement(alice.userID))
	})

	It("serves the content through a download redirect", func() {
		resp, _ := alice.get("/files/" + file.ID.String() + "/download")
		Expect(resp.StatusCode).To(Equal(http.StatusTemporaryRedirect))

		download, err := http.Get(resp.Header.Get("Location"))
		Expect(err).NotTo(HaveOccurred())
		defer download.Body.Close()
		data, err := io.ReadAll(download.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal(content))
	})

	It("rejects a transfer to oneself", func() {
		resp, body := alice.postJSON("/transfer/", dto.TransferRequest{
			FileID:   file.ID.String(),
			ToUserID: alice.userID.String(),
		})
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(decodeInto[dto.ErrorResponse](body).Kind).To(Equal("SelfTransfer"))
	})

	It("rejects a revoke before any transfer", func() {
		resp, body := alice.postJSON("/revoke/", dto.RevokeRequest{FileID: file.ID.String()})
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(decodeInto[dto.ErrorResponse](body).Kind).To(Equal("NotTransferred"))
	})

	It("hands the file to bob", func() {
		resp, body := alice.postJSON("/transfer/", dto.TransferRequest{
			FileID:   file.ID.String(),
			ToUserID: bob.userID.String(),
			Notes:    "for review",
		})
		Expect(resp.StatusCode).To(Equal(http.StatusOK), "body: %s", body)

		result := decodeInto[dto.TransferResponse](body)
		Expect(result.File.Owner.ID).To(Equal(bob.userID))
		Expect(result.File.OriginalOwner.ID).To(Equal(alice.userID))
		Expect(result.TransferHistory.Action).To(Equal(models.ActionTransfer))
		Expect(result.TransferHistory.Notes).To(Equal("for review"))

		_, body = alice.get("/my-files/")
		Expect(decodeInto[dto.MyFilesResponse](body).Count).To(BeZero())

		resp, _ = alice.get("/files/" + file.ID.String() + "/")
		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))

		_, body = bob.get("/my-files/")
		Expect(decodeInto[dto.MyFilesResponse](body).Count).To(Equal(1))
	})

	It("no longer lets alice transfer it", func() {
		resp, body := alice.postJSON("/transfer/", dto.TransferRequest{
			FileID:   file.ID.String(),
			ToUserID: carol.userID.String(),
		})
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(decodeInto[dto.ErrorResponse](body).Kind).To(Equal("NotOwner"))
	})

	It("lets bob pass it on to carol", func() {
		resp, body := bob.postJSON("/transfer/", dto.TransferRequest{
			FileID:   file.ID.String(),
			ToUserID: carol.userID.String(),
		})
		Expect(resp.StatusCode).To(Equal(http.StatusOK), "body: %s", body)
		Expect(decodeInto[dto.TransferResponse](body).File.OriginalOwner.ID).To(Equal(alice.userID))
	})

	It("only lets the original owner revoke", func() {
		resp, body := carol.postJSON("/revoke/", dto.RevokeRequest{FileID: file.ID.String()})
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(decodeInto[dto.ErrorResponse](body).Kind).To(Equal("NotOriginalOwner"))

		resp, body = alice.postJSON("/revoke/", dto.RevokeRequest{FileID: file.ID.String(), Notes: "back to me"})
		Expect(resp.StatusCode).To(Equal(http.StatusOK), "body: %s", body)

		result := decodeInto[dto.TransferResponse](body)
		Expect(result.File.Owner.ID).To(Equal(alice.userID))
		Expect(result.TransferHistory.Action).To(Equal(models.ActionRevoke))
		Expect(result.TransferHistory.FromUser.ID).To(Equal(carol.userID))
		Expect(result.TransferHistory.ToUser.ID).To(Equal(alice.userID))
	})

	It("keeps the whole trail in order", func() {
		resp, body := alice.get("/files/" + file.ID.String() + "/history")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		trail := decodeInto[dto.FileHistoryResponse](body)
		Expect(trail.Count).To(Equal(3))
		Expect(trail.History[0].ToUser.ID).To(Equal(bob.userID))
		Expect(trail.History[1].ToUser.ID).To(Equal(carol.userID))
		Expect(trail.History[2].Action).To(Equal(models.ActionRevoke))

		_, body = bob.get("/history/")
		history := decodeInto[dto.HistoryResponse](body)
		Expect(history.Count).To(Equal(2))
		Expect(history.History[0].FromUser.ID).To(Equal(bob.userID))
		Expect(history.History[1].ToUser.ID).To(Equal(bob.userID))
	})

	It("rejects a transfer to a deactivated user", func() {
		resp, _ := carol.do(http.MethodDelete, "/users/me", "", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusNoContent))

		resp, body := alice.postJSON("/transfer/", dto.TransferRequest{
			FileID:   file.ID.String(),
			ToUserID: carol.userID.String(),
		})
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(decodeInto[dto.ErrorResponse](body).Kind).To(Equal("RecipientNotFound"))

		resp, _ = carol.get("/users/me")
		Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
	})
})
