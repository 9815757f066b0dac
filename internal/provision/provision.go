// Idempotent sheet provisioning: make sure an identity's prospect sheet and
// application log sheet exist with their headers and column constraints
// before anything reads or appends. Safe to call on every access.

package provision

import (
	"context"
	"fmt"

	"go-outreach-automation/internal/models"
	"go-outreach-automation/internal/registry"
	"go-outreach-automation/internal/store"
)

// ProspectSheetName is the identity's prospect table name.
func ProspectSheetName(username string) string {
	return username
}

// LogSheetName is the identity's application log table name.
func LogSheetName(username string) string {
	return username + "-applications"
}

// EnsureProspectSheet creates the identity's prospect sheet if absent and, if
// the sheet has no rows yet, writes the header and attaches the Role and
// Stage column constraints. Returns whether the table was newly created.
// Any store error aborts the current operation; nothing is retried.
func EnsureProspectSheet(ctx context.Context, st store.Store, id *registry.Identity) (bool, error) {
	name := ProspectSheetName(id.Username)

	created, err := ensureTable(ctx, st, name)
	if err != nil {
		return false, err
	}

	rows, err := st.ReadAll(ctx, name)
	if err != nil {
		return created, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}

	//header + constraints only when the sheet is still empty
	if len(rows) == 0 {
		if err := st.AppendRow(ctx, name, models.ProspectHeader); err != nil {
			return created, fmt.Errorf("failed to write header of %q: %w", name, err)
		}
		if err := st.SetColumnConstraint(ctx, name, models.ColRole, id.Roles); err != nil {
			return created, fmt.Errorf("failed to constrain Role column of %q: %w", name, err)
		}
		if err := st.SetColumnConstraint(ctx, name, models.ColStage, models.StageValues()); err != nil {
			return created, fmt.Errorf("failed to constrain Stage column of %q: %w", name, err)
		}
	}

	return created, nil
}

// EnsureLogSheet provisions the 10-column application log sheet. The log
// carries no enum constraints.
func EnsureLogSheet(ctx context.Context, st store.Store, username string) error {
	name := LogSheetName(username)

	if _, err := ensureTable(ctx, st, name); err != nil {
		return err
	}

	rows, err := st.ReadAll(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", name, err)
	}

	if len(rows) == 0 {
		if err := st.AppendRow(ctx, name, models.LogHeader); err != nil {
			return fmt.Errorf("failed to write header of %q: %w", name, err)
		}
	}

	return nil
}

func ensureTable(ctx context.Context, st store.Store, name string) (bool, error) {
	exists, err := st.TableExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to check sheet %q: %w", name, err)
	}
	if exists {
		return false, nil
	}
	if err := st.CreateTable(ctx, name); err != nil {
		return false, fmt.Errorf("failed to create sheet %q: %w", name, err)
	}
	return true, nil
}
