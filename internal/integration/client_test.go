package integration_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/filetransfer/filetransfer_api/internal/api/dto"
	"github.com/google/uuid"
	. "github.com/onsi/gomega"
)

// apiClient talks to the test server as one user. Auth cookies are marked
// Secure and never travel over the plain http test server, so requests carry
// the bearer token from the auth response instead.
type apiClient struct {
	http   *http.Client
	token  string
	userID uuid.UUID
}

func newClient() *apiClient {
	return &apiClient{
		http: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (c *apiClient) do(method, path, contentType string, body io.Reader) (*http.Response, []byte) {
	req, err := http.NewRequest(method, tsServer.URL+"/api/v1"+path, body)
	Expect(err).NotTo(HaveOccurred())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())
	return resp, data
}

func (c *apiClient) postJSON(path string, payload any) (*http.Response, []byte) {
	data, err := json.Marshal(payload)
	Expect(err).NotTo(HaveOccurred())
	return c.do(http.MethodPost, path, "application/json", bytes.NewReader(data))
}

func (c *apiClient) get(path string) (*http.Response, []byte) {
	return c.do(http.MethodGet, path, "", nil)
}

func (c *apiClient) authenticate(path string, payload any, status int) {
	resp, body := c.postJSON(path, payload)
	Expect(resp.StatusCode).To(Equal(status), "body: %s", body)

	var auth dto.AuthResponse
	Expect(json.Unmarshal(body, &auth)).To(Succeed())
	c.token = auth.Tokens.AccessToken
	c.userID = auth.User.ID
}

func registeredClient(username string) *apiClient {
	c := newClient()
	c.authenticate("/register", dto.RegisterRequest{
		Username: username,
		Password: "password123",
		Email:    username + "@example.com",
	}, http.StatusCreated)
	return c
}

func (c *apiClient) upload(name, filename string, content []byte) dto.FileResponse {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	Expect(writer.WriteField("name", name)).To(Succeed())
	part, err := writer.CreateFormFile("file", filename)
	Expect(err).NotTo(HaveOccurred())
	_, err = part.Write(content)
	Expect(err).NotTo(HaveOccurred())
	Expect(writer.Close()).To(Succeed())

	resp, data := c.do(http.MethodPost, "/upload/", writer.FormDataContentType(), body)
	Expect(resp.StatusCode).To(Equal(http.StatusCreated), "body: %s", data)

	var uploaded dto.UploadResponse
	Expect(json.Unmarshal(data, &uploaded)).To(Succeed())
	return uploaded.File
}

func decodeInto[T any](data []byte) T {
	var v T
	Expect(json.Unmarshal(data, &v)).To(Succeed(), "body: %s", data)
	return v
}
