// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import "context"

// Provisioning advances through these states in order. The names label
// failure metrics and wrapped errors.
const (
	StateValidated       = "Validated"
	StateSchemaChecked   = "SchemaChecked"
	StateSchemaCreated   = "SchemaCreated"
	StateTenantRecorded  = "TenantRecorded"
	StateConnectionBound = "ConnectionBound"
	StateMigrated        = "Migrated"
	StateAdminSeeded     = "AdminSeeded"
	StateSettingsSeeded  = "SettingsSeeded"
	StateCommitted       = "Committed"
)

// step is one stage of the provisioning saga. run moves the saga forward and
// must be atomic, it either completes its side effect or leaves nothing
// behind. undo compensates for a completed run when a later step fails. Steps
// without side effects leave undo nil.
type step struct {
	name string
	run  func(ctx context.Context) error
	undo func(ctx context.Context) error
}

// runSaga executes steps in order. When a step fails, the undos of every
// completed step run in reverse order and the failure comes back as a
// ProvisioningError naming the failed step. A failed undo escalates into a
// CompensationError wrapping both failures; the remaining undos still run.
func runSaga(ctx context.Context, steps []step) error {
	completed := make([]step, 0, len(steps))

	for _, st := range steps {
		if err := st.run(ctx); err != nil {
			return unwind(ctx, completed, &ProvisioningError{Step: st.name, Err: err})
		}

		completed = append(completed, st)
	}

	return nil
}

func unwind(ctx context.Context, completed []step, cause error) error {
	err := cause

	for i := len(completed) - 1; i >= 0; i-- {
		if completed[i].undo == nil {
			continue
		}

		if undoErr := completed[i].undo(ctx); undoErr != nil {
			err = &CompensationError{Cause: err, Undo: undoErr}
		}
	}

	return err
}
