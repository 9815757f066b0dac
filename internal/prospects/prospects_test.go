package prospects

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-outreach-automation/internal/models"
	"go-outreach-automation/internal/provision"
	"go-outreach-automation/internal/registry"
	"go-outreach-automation/internal/store"
)

func setup(t *testing.T, username string) (context.Context, *store.Memory, *registry.Identity) {
	t.Helper()
	ctx := context.Background()
	st := store.NewMemory()
	id, err := registry.Get(username)
	require.NoError(t, err)
	_, err = provision.EnsureProspectSheet(ctx, st, id)
	require.NoError(t, err)
	return ctx, st, id
}

func TestAppendAndListRoundTrip(t *testing.T) {
	ctx, st, id := setup(t, "vishnu")

	p := models.Prospect{
		Name:       "Asha Rao",
		ProfileURL: "https://linkedin.com/in/asha",
		Company:    "Orbit",
		Role:       "Data Engineer",
		Stage:      models.StageStart,
	}
	require.NoError(t, Append(ctx, st, id, p))

	records, err := List(ctx, st, id.Username)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, p, records[0])
}

func TestAppendValidation(t *testing.T) {
	ctx, st, id := setup(t, "vishnu")

	base := models.Prospect{
		Name: "Asha", ProfileURL: "u", Company: "Orbit",
		Role: "Data Engineer", Stage: models.StageStart,
	}

	tests := []struct {
		name     string
		mutate   func(p *models.Prospect)
		expected error
	}{
		{name: "missing name", mutate: func(p *models.Prospect) { p.Name = "" }, expected: ErrMissingField},
		{name: "missing url", mutate: func(p *models.Prospect) { p.ProfileURL = "" }, expected: ErrMissingField},
		{name: "missing company", mutate: func(p *models.Prospect) { p.Company = "" }, expected: ErrMissingField},
		{name: "role outside identity list", mutate: func(p *models.Prospect) { p.Role = "Astronaut" }, expected: ErrRoleNotAllowed},
		{name: "unknown stage", mutate: func(p *models.Prospect) { p.Stage = "Hired" }, expected: ErrInvalidStage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			assert.ErrorIs(t, Append(ctx, st, id, p), tt.expected)
		})
	}

	//none of the rejected appends reached the sheet
	records, err := List(ctx, st, id.Username)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAppendRejectsDuplicateName(t *testing.T) {
	ctx, st, id := setup(t, "sakshi")

	p := models.Prospect{
		Name: "Asha Rao", ProfileURL: "u", Company: "Orbit",
		Role: "Frontend Developer", Stage: models.StageStart,
	}
	require.NoError(t, Append(ctx, st, id, p))

	//same name up to case and accents counts as a duplicate
	dup := p
	dup.Name = "ásha  RAO"
	dup.Company = "Other"
	err := Append(ctx, st, id, dup)
	assert.ErrorIs(t, err, ErrDuplicateName)

	records, err := List(ctx, st, id.Username)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestListSkipsBlankRows(t *testing.T) {
	ctx, st, id := setup(t, "bhanu")

	require.NoError(t, st.AppendRow(ctx, provision.ProspectSheetName(id.Username),
		[]string{"", "", "", "Backend Developer", "Start"}))

	records, err := List(ctx, st, id.Username)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSelectByName(t *testing.T) {
	records := []models.Prospect{
		{Name: "Asha Rao", Company: "Orbit"},
		{Name: "Ravi Kumar", Company: "Lumen"},
	}

	got, ok := SelectByName(records, "asha rao")
	require.True(t, ok)
	assert.Equal(t, "Orbit", got.Company)

	_, ok = SelectByName(records, "nobody")
	assert.False(t, ok)
}
