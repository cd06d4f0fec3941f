package utils

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/ssh"
)

func HashPass(pass string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func CompareHashPass(hashedPass, pass string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPass), []byte(pass))
}

func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

func CompareTokenHash(storedHash, token string) bool {
	tokenHash := HashToken(token)
	return storedHash == tokenHash
}

// GenerateEdDSAKeys returns a fresh key pair in the form the auth_manager
// config expects: a base64 encoded OpenSSH private key PEM and a base64
// encoded authorized_keys line.
func GenerateEdDSAKeys() (privateKeyBase64, publicKeyBase64 string, err error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate EdDSA keys: %w", err)
	}

	pemPrivateKey, err := ssh.MarshalPrivateKey(privateKey, "")
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal private key: %w", err)
	}
	privateKeyBase64 = base64.StdEncoding.EncodeToString(pem.EncodeToMemory(pemPrivateKey))

	sshPublicKey, err := ssh.NewPublicKey(publicKey)
	if err != nil {
		return "", "", fmt.Errorf("failed to create SSH public key: %w", err)
	}
	publicKeyBase64 = base64.StdEncoding.EncodeToString(ssh.MarshalAuthorizedKey(sshPublicKey))

	return privateKeyBase64, publicKeyBase64, nil
}

func ParseEdDSAKeys(privateKeyBase64, publicKeyBase64 string) (ed25519.PrivateKey, ed25519.PublicKey, error) {
	if privateKeyBase64 == "" || publicKeyBase64 == "" {
		return nil, nil, fmt.Errorf("EdDSA keys not found in auth_manager config")
	}

	privateKeyPEM, err := base64.StdEncoding.DecodeString(privateKeyBase64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode private key: %w", err)
	}

	publicKeyPEM, err := base64.StdEncoding.DecodeString(publicKeyBase64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode public key: %w", err)
	}

	privateKey, err := ssh.ParseRawPrivateKey(privateKeyPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	ed25519PrivateKey, ok := privateKey.(*ed25519.PrivateKey)
	if !ok {
		return nil, nil, fmt.Errorf("private key is not Ed25519 type")
	}

	sshPublicKey, _, _, _, err := ssh.ParseAuthorizedKey(publicKeyPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	cryptoPublicKey, ok := sshPublicKey.(ssh.CryptoPublicKey)
	if !ok {
		return nil, nil, fmt.Errorf("public key is not Ed25519 type")
	}

	ed25519PublicKey, ok := cryptoPublicKey.CryptoPublicKey().(ed25519.PublicKey)
	if !ok {
		return nil, nil, fmt.Errorf("public key is not Ed25519 type")
	}

	return *ed25519PrivateKey, ed25519PublicKey, nil
}
