// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package hash derives and verifies argon2id password digests in PHC string
// format. Admin credentials are hashed before they ever reach a tenant schema.
package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrInvalidHash         = errors.New("encoded hash is not in the expected format")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

// Config holds the argon2id parameters baked into every produced digest.
type Config struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

func DefaultConfig() *Config {
	return &Config{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

type Hasher struct {
	config *Config
}

// Hash derives an argon2id digest of password and encodes it together with
// its parameters and salt, so Verify needs nothing but the stored string.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.config.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.config.Iterations, h.config.Memory, h.config.Parallelism, h.config.KeyLength)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.config.Memory,
		h.config.Iterations,
		h.config.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify reports whether password matches encoded, comparing in constant time
// with the parameters recovered from the digest itself.
func (h *Hasher) Verify(password, encoded string) (bool, error) {
	config, salt, key, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	other := argon2.IDKey([]byte(password), salt, config.Iterations, config.Memory, config.Parallelism, config.KeyLength)

	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

func decodeHash(encoded string) (*Config, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, nil, ErrInvalidHash
	}

	if version != argon2.Version {
		return nil, nil, nil, ErrIncompatibleVersion
	}

	config := new(Config)

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &config.Memory, &config.Iterations, &config.Parallelism); err != nil {
		return nil, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, ErrInvalidHash
	}

	config.SaltLength = uint32(len(salt))

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, nil, ErrInvalidHash
	}

	config.KeyLength = uint32(len(key))

	return config, salt, key, nil
}

var _ HasherInterface = (*Hasher)(nil)

func NewHasher(config *Config) *Hasher {
	h := new(Hasher)

	if config == nil {
		config = DefaultConfig()
	}

	h.config = config

	return h
}
