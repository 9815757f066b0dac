package provision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-outreach-automation/internal/models"
	"go-outreach-automation/internal/registry"
	"go-outreach-automation/internal/store"
)

func TestEnsureProspectSheetFirstAccess(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	id, err := registry.Get("vishnu")
	require.NoError(t, err)

	created, err := EnsureProspectSheet(ctx, st, id)
	require.NoError(t, err)
	assert.True(t, created)

	rows, err := st.ReadAll(ctx, ProspectSheetName("vishnu"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.ProspectHeader, rows[0])
}

func TestEnsureProspectSheetIdempotent(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	id, err := registry.Get("sakshi")
	require.NoError(t, err)

	_, err = EnsureProspectSheet(ctx, st, id)
	require.NoError(t, err)

	p := models.Prospect{
		Name: "Asha", ProfileURL: "https://linkedin.com/in/asha",
		Company: "Orbit", Role: id.Roles[0], Stage: models.StageStart,
	}
	require.NoError(t, st.AppendRow(ctx, ProspectSheetName("sakshi"), p.Row()))

	created, err := EnsureProspectSheet(ctx, st, id)
	require.NoError(t, err)
	assert.False(t, created)

	//existing rows survive repeated provisioning
	rows, err := st.ReadAll(ctx, ProspectSheetName("sakshi"))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestEnsureProspectSheetConstraints(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	id, err := registry.Get("harsha")
	require.NoError(t, err)

	_, err = EnsureProspectSheet(ctx, st, id)
	require.NoError(t, err)

	name := ProspectSheetName("harsha")

	badRole := models.Prospect{
		Name: "Ravi", ProfileURL: "u", Company: "c",
		Role: "Astronaut", Stage: models.StageStart,
	}
	err = st.AppendRow(ctx, name, badRole.Row())
	assert.ErrorIs(t, err, store.ErrConstraintViolation)

	badStage := models.Prospect{
		Name: "Ravi", ProfileURL: "u", Company: "c",
		Role: id.Roles[0], Stage: "Hired",
	}
	err = st.AppendRow(ctx, name, badStage.Row())
	assert.ErrorIs(t, err, store.ErrConstraintViolation)

	good := models.Prospect{
		Name: "Ravi", ProfileURL: "u", Company: "c",
		Role: id.Roles[0], Stage: models.StageFollowUp,
	}
	assert.NoError(t, st.AppendRow(ctx, name, good.Row()))
}

func TestEnsureLogSheet(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	require.NoError(t, EnsureLogSheet(ctx, st, "sai"))
	require.NoError(t, EnsureLogSheet(ctx, st, "sai"))

	rows, err := st.ReadAll(ctx, LogSheetName("sai"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.LogHeader, rows[0])
}

func TestSheetNames(t *testing.T) {
	assert.Equal(t, "bhanu", ProspectSheetName("bhanu"))
	assert.Equal(t, "bhanu-applications", LogSheetName("bhanu"))
}
