// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import (
	"errors"
	"fmt"
)

// ErrSubdomainTaken reports that the requested subdomain already has a schema
// or a catalog row. The registry pre-check raises it, and so do the race
// backstops, duplicate schema on CREATE and unique violation on the tenants
// insert. All three surface to the caller the same way.
var ErrSubdomainTaken = errors.New("subdomain is already taken")

// ProvisioningError wraps the failure of a single provisioning step with the
// step's name.
type ProvisioningError struct {
	Step string
	Err  error
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("provisioning failed at %s: %v", e.Step, e.Err)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}

// CompensationError reports that rolling back a failed provisioning run
// itself failed, leaving state behind that needs operator cleanup.
type CompensationError struct {
	// Cause is the failure that triggered the rollback.
	Cause error
	// Undo is the failure of the compensating action.
	Undo error
}

func (e *CompensationError) Error() string {
	return fmt.Sprintf("rollback failed: %v (while compensating for: %v)", e.Undo, e.Cause)
}

func (e *CompensationError) Unwrap() error {
	return e.Cause
}
