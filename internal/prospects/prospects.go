// Prospect records: listing an identity's sheet, appending new prospects
// with validation, and selecting the active record.

package prospects

import (
	"context"
	"errors"
	"fmt"

	"go-outreach-automation/internal/dedup"
	"go-outreach-automation/internal/models"
	"go-outreach-automation/internal/provision"
	"go-outreach-automation/internal/registry"
	"go-outreach-automation/internal/store"
)

var (
	ErrDuplicateName  = errors.New("prospect name already exists")
	ErrMissingField   = errors.New("all prospect fields are required")
	ErrRoleNotAllowed = errors.New("role not in identity's allowed roles")
	ErrInvalidStage   = errors.New("unknown stage")
)

// List reads every data row of the identity's prospect sheet. Rows without a
// prospect name are skipped, the way half-filled spreadsheet rows are.
func List(ctx context.Context, st store.Store, username string) ([]models.Prospect, error) {
	rows, err := st.ReadAll(ctx, provision.ProspectSheetName(username))
	if err != nil {
		return nil, fmt.Errorf("failed to load prospects of %q: %w", username, err)
	}

	var records []models.Prospect
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		p := models.ProspectFromRow(row)
		if p.Name == "" {
			continue
		}
		records = append(records, p)
	}
	return records, nil
}

// Append validates the prospect and adds it to the identity's sheet. The
// duplicate check runs against the live sheet contents, not a cached
// snapshot; two sessions appending the same name at the same instant can
// still race, which the design accepts.
func Append(ctx context.Context, st store.Store, id *registry.Identity, p models.Prospect) error {
	if p.Name == "" || p.ProfileURL == "" || p.Company == "" || p.Role == "" || p.Stage == "" {
		return ErrMissingField
	}
	if !id.HasRole(p.Role) {
		return fmt.Errorf("%w: %q for %q", ErrRoleNotAllowed, p.Role, id.Username)
	}
	if !models.ValidStage(string(p.Stage)) {
		return fmt.Errorf("%w: %q", ErrInvalidStage, p.Stage)
	}

	existing, err := List(ctx, st, id.Username)
	if err != nil {
		return err
	}
	seen := dedup.NewNameSet()
	for _, r := range existing {
		seen.Add(r.Name)
	}
	if seen.Has(p.Name) {
		return fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
	}

	if err := st.AppendRow(ctx, provision.ProspectSheetName(id.Username), p.Row()); err != nil {
		return fmt.Errorf("failed to append prospect %q: %w", p.Name, err)
	}
	return nil
}

// SelectByName picks the active record. Matching is normalized the same way
// the duplicate check is, so "asha" finds "Asha".
func SelectByName(records []models.Prospect, name string) (models.Prospect, bool) {
	want := dedup.Normalize(name)
	for _, r := range records {
		if dedup.Normalize(r.Name) == want {
			return r, true
		}
	}
	return models.Prospect{}, false
}
