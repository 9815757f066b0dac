package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-outreach-automation/internal/models"
	"go-outreach-automation/internal/registry"
)

func TestResolveNeverFails(t *testing.T) {
	for _, username := range registry.Usernames() {
		id, err := registry.Get(username)
		require.NoError(t, err)
		for _, stage := range models.Stages() {
			tmpl := Resolve(id, stage)
			assert.NotEmpty(t, tmpl, "%s/%s", username, stage)
		}
	}
}

func TestResolveStageSpecificity(t *testing.T) {
	id, err := registry.Get("vishnu")
	require.NoError(t, err)

	start := Resolve(id, models.StageStart)
	note := Resolve(id, models.StageSendNote)
	followUp := Resolve(id, models.StageFollowUp)

	assert.NotEqual(t, start, note)
	assert.NotEqual(t, start, followUp)
	//shared stages sign with the sender placeholder
	assert.Contains(t, followUp, "{Sender}")
}

func TestRenderIsDeterministic(t *testing.T) {
	id, err := registry.Get("sai")
	require.NoError(t, err)

	f := Fields{Name: "Asha", Company: "Orbit", Role: "Frontend Developer", Sender: id.FullName}
	tmpl := Resolve(id, models.StageReferralRequest)

	first := Render(tmpl, f)
	second := Render(tmpl, f)
	assert.Equal(t, first, second)
}

func TestRenderSubstitutesAllPlaceholders(t *testing.T) {
	id, err := registry.Get("sai")
	require.NoError(t, err)

	f := Fields{Name: "Asha", Company: "Orbit", Role: "Frontend Developer", Sender: id.FullName}
	for _, stage := range models.Stages() {
		text := Render(Resolve(id, stage), f)
		assert.Empty(t, Unresolved(text), "stage %s", stage)
		assert.True(t, strings.Contains(text, "Asha"), "stage %s", stage)
		assert.True(t, strings.Contains(text, "Orbit"), "stage %s", stage)
	}
}

func TestRenderPassesFieldsThrough(t *testing.T) {
	text := Render("Hi {Name}, re {Role} at {Company}", Fields{
		Name: "{weird}", Company: "A & B", Role: "",
	})
	assert.Equal(t, "Hi {weird}, re  at A & B", text)
}

func TestUnresolved(t *testing.T) {
	assert.Empty(t, Unresolved("all done"))
	assert.Equal(t, []string{"{Name}", "{Company}"}, Unresolved("Hi {Name} at {Company}"))
}
