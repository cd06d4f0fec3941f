package integration_test

import (
	"net/http"

	"github.com/filetransfer/filetransfer_api/internal/api/dto"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/filetransfer/filetransfer_api/internal/utils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Admin Flow E2E", Ordered, func() {
	var admin, user *apiClient

	BeforeAll(func() {
		hash, err := utils.HashPass("admin_password")
		Expect(err).NotTo(HaveOccurred())

		Expect(pgStore.CreateUser(ctx, &models.User{
			Username:       "rootadmin",
			HashedPassword: hash,
			Role:           models.RoleAdmin,
			IsActive:       true,
		})).To(Succeed())

		admin = newClient()
		admin.authenticate("/login", dto.LoginRequest{Username: "rootadmin", Password: "admin_password"}, http.StatusOK)

		user = registeredClient("regularuser")
		other := registeredClient("regularother")
		file := user.upload("Design draft", "draft.md", []byte("# draft"))

		resp, body := user.postJSON("/transfer/", dto.TransferRequest{
			FileID:   file.ID.String(),
			ToUserID: other.userID.String(),
		})
		Expect(resp.StatusCode).To(Equal(http.StatusOK), "body: %s", body)
	})

	It("keeps regular users out", func() {
		resp, _ := user.get("/admin/files")
		Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
	})

	It("lists every file", func() {
		resp, body := admin.get("/admin/files?limit=500")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		files := decodeInto[dto.AdminFileListResponse](body)
		Expect(files.TotalCount).To(BeNumerically(">=", 1))

		var draft *dto.AdminFileResponse
		for i := range files.Files {
			if files.Files[i].Name == "Design draft" {
				draft = &files.Files[i]
			}
		}
		Expect(draft).NotTo(BeNil())
		Expect(draft.Transferred).To(BeTrue())
		Expect(draft.Owner).To(Equal("regularother"))
		Expect(draft.OriginalOwner).To(Equal("regularuser"))
	})

	It("lists the ledger newest first", func() {
		resp, body := admin.get("/admin/transfers?limit=1")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		transfers := decodeInto[dto.AdminTransferListResponse](body)
		Expect(transfers.Transfers).To(HaveLen(1))
		Expect(transfers.TotalCount).To(BeNumerically(">=", 1))
	})
})
