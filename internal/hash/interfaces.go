// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hash

type HasherInterface interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}
