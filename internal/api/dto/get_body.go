package dto

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

const maxJSONBodySize = 1 << 20

var validate = validator.New()

type HTTPResource interface {
	RegisterRequest | LoginRequest | TransferRequest | RevokeRequest
}

// GetRequestBody decodes and validates a JSON body. Unknown fields are
// rejected.
func GetRequestBody[T HTTPResource](w http.ResponseWriter, r *http.Request) (*T, error) {
	var body T
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodySize))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&body); err != nil {
		return nil, err
	}
	if err := validate.Struct(body); err != nil {
		return nil, err
	}

	return &body, nil
}
