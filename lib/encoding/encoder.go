// Package encoding turns component props into the opaque `p` parameter that
// travels with every component request, and back.
package encoding

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	ErrInvalidFormat    = errors.New("invalid format")
	ErrSignatureInvalid = errors.New("signature verification failed")
	ErrDecryptFailed    = errors.New("decryption failed")
)

// sigLen is the truncated HMAC length in bytes (128 bits).
const sigLen = 16

// Encoder handles encoding and decoding of component props.
// It supports two modes:
//   - Signed (default): base64(msgpack) + HMAC, visible but tamper-proof
//   - Encrypted: AES-256-GCM, fully opaque
type Encoder struct {
	key []byte
	gcm cipher.AEAD
}

// NewEncoder creates a new encoder. Keys shorter than 32 bytes are stretched
// with SHA-256.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}

	block, err := aes.NewCipher(key[:32])
	if err != nil {
		return nil, errors.WithStack(err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Encoder{key: key, gcm: gcm}, nil
}

// Encode serializes v with msgpack and signs or encrypts the result.
// Struct fields are keyed by their `msgpack` tags.
func (e *Encoder) Encode(v any, sensitive bool) (string, error) {
	packed, err := msgpack.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "could not marshal props")
	}

	if sensitive {
		return e.encrypt(packed)
	}
	return e.sign(packed), nil
}

// Decode verifies (or decrypts) encoded and unmarshals it into v.
func (e *Encoder) Decode(encoded string, sensitive bool, v any) error {
	var (
		packed []byte
		err    error
	)
	if sensitive {
		packed, err = e.decrypt(encoded)
	} else {
		packed, err = e.verify(encoded)
	}
	if err != nil {
		return err
	}

	if err := msgpack.Unmarshal(packed, v); err != nil {
		return errors.Wrapf(ErrInvalidFormat, "could not unmarshal props: %v", err)
	}
	return nil
}

func (e *Encoder) sign(data []byte) string {
	b64 := base64.RawURLEncoding.EncodeToString(data)
	return b64 + "." + base64.RawURLEncoding.EncodeToString(e.mac(data))
}

func (e *Encoder) verify(encoded string) ([]byte, error) {
	payload, signature, ok := strings.Cut(encoded, ".")
	if !ok {
		return nil, errors.Wrap(ErrInvalidFormat, "missing signature")
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidFormat, err.Error())
	}

	sig, err := base64.RawURLEncoding.DecodeString(signature)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidFormat, err.Error())
	}

	if !hmac.Equal(sig, e.mac(data)) {
		return nil, errors.WithStack(ErrSignatureInvalid)
	}

	return data, nil
}

func (e *Encoder) mac(data []byte) []byte {
	m := hmac.New(sha256.New, e.key)
	m.Write(data)
	return m.Sum(nil)[:sigLen]
}

func (e *Encoder) encrypt(data []byte) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.WithStack(err)
	}

	sealed := e.gcm.Seal(nonce, nonce, data, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (e *Encoder) decrypt(encoded string) ([]byte, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidFormat, err.Error())
	}

	size := e.gcm.NonceSize()
	if len(sealed) < size {
		return nil, errors.Wrap(ErrDecryptFailed, "ciphertext too short")
	}

	plain, err := e.gcm.Open(nil, sealed[:size], sealed[size:], nil)
	if err != nil {
		return nil, errors.Wrap(ErrDecryptFailed, err.Error())
	}
	return plain, nil
}
