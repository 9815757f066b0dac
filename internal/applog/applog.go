// Append-only application log. One row per send attempt, duplicates allowed:
// re-applying to the same company is a legitimate event, not an error.

package applog

import (
	"context"
	"fmt"

	"go-outreach-automation/internal/models"
	"go-outreach-automation/internal/provision"
	"go-outreach-automation/internal/store"
)

// Append provisions the identity's log sheet on first use and appends one
// entry. The entry is written as-is; the log never rewrites history.
func Append(ctx context.Context, st store.Store, username string, entry models.ApplicationEntry) error {
	if err := provision.EnsureLogSheet(ctx, st, username); err != nil {
		return err
	}
	name := provision.LogSheetName(username)
	if err := st.AppendRow(ctx, name, entry.Row()); err != nil {
		return fmt.Errorf("failed to log application to %q: %w", name, err)
	}
	return nil
}

// List returns the logged entries, newest last, skipping the header row.
func List(ctx context.Context, st store.Store, username string) ([]models.ApplicationEntry, error) {
	name := provision.LogSheetName(username)
	rows, err := st.ReadAll(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}

	entries := make([]models.ApplicationEntry, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		cell := func(j int) string {
			if j < len(row) {
				return row[j]
			}
			return ""
		}
		entries = append(entries, models.ApplicationEntry{
			Date:              cell(0),
			Company:           cell(1),
			Role:              cell(2),
			JobID:             cell(3),
			RecruiterName:     cell(4),
			RecruiterEmail:    cell(5),
			Subject:           cell(6),
			Motivation:        cell(7),
			JobDescriptionRef: cell(8),
			Status:            cell(9),
		})
	}
	return entries, nil
}
