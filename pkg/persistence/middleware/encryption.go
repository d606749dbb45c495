package middleware

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/parley-sh/parley/pkg/domain"
	"github.com/parley-sh/parley/pkg/ports"
)

// envelopeKey is the single field an encrypted bag is stored under.
const envelopeKey = "__encrypted__"

// EncryptionConfig holds the keys for encryption and decryption.
type EncryptionConfig struct {
	// ActiveKey is the key used for encrypting new data.
	// Must be 32 bytes for AES-256.
	ActiveKey []byte

	// FallbackKeys is a list of old keys to try when decryption fails.
	// This enables zero-downtime key rotation.
	FallbackKeys [][]byte
}

type encryptionMiddleware struct {
	next   ports.VarStore
	config EncryptionConfig
}

// NewEncryptionMiddleware creates a middleware that encrypts the whole bag
// with AES-GCM before it reaches the underlying store. The persisted bag
// holds a single opaque field.
func NewEncryptionMiddleware(config EncryptionConfig) Middleware {
	if len(config.ActiveKey) != 32 {
		panic("active key must be 32 bytes (AES-256)")
	}
	return func(next ports.VarStore) ports.VarStore {
		return &encryptionMiddleware{next: next, config: config}
	}
}

func (m *encryptionMiddleware) Save(ctx context.Context, name string, bag domain.VarBag) error {
	plainText, err := json.Marshal(bag)
	if err != nil {
		return fmt.Errorf("failed to marshal bag: %w", err)
	}

	ciphertext, err := encrypt(plainText, m.config.ActiveKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt bag: %w", err)
	}

	envelope := domain.VarBag{
		envelopeKey: base64.StdEncoding.EncodeToString(ciphertext),
	}
	return m.next.Save(ctx, name, envelope)
}

func (m *encryptionMiddleware) Load(ctx context.Context, name string) (domain.VarBag, error) {
	envelope, err := m.next.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	encoded, ok := envelope[envelopeKey]
	if !ok {
		// Plaintext bag from before encryption was enabled.
		return envelope, nil
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("corrupt envelope for %q: %w", name, err)
	}

	plainText, err := decryptWithKeys(ciphertext, m.config)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt bag %q: %w", name, err)
	}

	var bag domain.VarBag
	if err := json.Unmarshal(plainText, &bag); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bag %q: %w", name, err)
	}
	return bag, nil
}

func (m *encryptionMiddleware) Delete(ctx context.Context, name string) error {
	return m.next.Delete(ctx, name)
}

// decryptWithKeys tries the active key first, then each fallback key in
// order, so rotated-out keys keep old sessions readable.
func decryptWithKeys(ciphertext []byte, config EncryptionConfig) ([]byte, error) {
	plainText, err := decrypt(ciphertext, config.ActiveKey)
	if err == nil {
		return plainText, nil
	}

	for _, key := range config.FallbackKeys {
		if plainText, err = decrypt(ciphertext, key); err == nil {
			return plainText, nil
		}
	}
	return nil, errors.New("no configured key decrypts this payload")
}

func encrypt(plainText, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plainText, nil), nil
}

func decrypt(ciphertext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext shorter than nonce")
	}
	nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, sealed, nil)
}
