// Package ruletoken запечатывает идентификатор правила поставщика в
// непрозрачный токен для ссылки отказа от резервации в письме.
package ruletoken

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
)

var ErrInvalidToken = errors.New("invalid reject token")

type Sealer struct {
	aead cipher.AEAD
}

// New строит Sealer из секрета произвольной длины: ключ AES-256
// выводится как sha256(secret).
func New(secret string) (*Sealer, error) {
	if secret == "" {
		return nil, errors.New("ruletoken: empty secret")
	}

	key := sha256.Sum256([]byte(secret))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("ruletoken: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("ruletoken: %w", err)
	}

	return &Sealer{aead: aead}, nil
}

func (s *Sealer) Seal(id int64) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("ruletoken: %w", err)
	}

	plaintext := make([]byte, 8)
	binary.BigEndian.PutUint64(plaintext, uint64(id))

	// токен = nonce || ciphertext
	sealed := s.aead.Seal(nonce, nonce, plaintext, nil)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (s *Sealer) Open(token string) (int64, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, ErrInvalidToken
	}

	nonceSize := s.aead.NonceSize()
	if len(sealed) <= nonceSize {
		return 0, ErrInvalidToken
	}

	plaintext, err := s.aead.Open(nil, sealed[:nonceSize], sealed[nonceSize:], nil)
	if err != nil {
		return 0, ErrInvalidToken
	}
	if len(plaintext) != 8 {
		return 0, ErrInvalidToken
	}

	return int64(binary.BigEndian.Uint64(plaintext)), nil
}
