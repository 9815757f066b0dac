package prospects

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-outreach-automation/internal/models"
)

var sample = []models.Prospect{
	{Name: "Asha", Company: "Orbit", Role: "Frontend Developer", Stage: models.StageStart},
	{Name: "Ravi", Company: "Orbit", Role: "Backend Developer", Stage: models.StageFollowUp},
	{Name: "Mina", Company: "Lumen", Role: "Frontend Developer", Stage: models.StageStart},
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		q        Query
		expected []string
	}{
		{name: "empty query returns all", q: Query{}, expected: []string{"Asha", "Ravi", "Mina"}},
		{name: "All sentinel returns all", q: Query{Company: Any, Role: Any, Stage: Any}, expected: []string{"Asha", "Ravi", "Mina"}},
		{name: "company only", q: Query{Company: "Orbit"}, expected: []string{"Asha", "Ravi"}},
		{name: "role only", q: Query{Role: "Frontend Developer"}, expected: []string{"Asha", "Mina"}},
		{name: "stage only", q: Query{Stage: "Follow-up"}, expected: []string{"Ravi"}},
		{name: "combined", q: Query{Company: "Orbit", Role: "Frontend Developer"}, expected: []string{"Asha"}},
		{name: "no match", q: Query{Company: "Nowhere"}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sample, tt.q)
			names := make([]string, 0, len(got))
			for _, p := range got {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestFilterCommutes(t *testing.T) {
	//applying filters one at a time matches applying them at once
	sequential := Filter(Filter(sample, Query{Company: "Orbit"}), Query{Role: "Backend Developer"})
	combined := Filter(sample, Query{Company: "Orbit", Role: "Backend Developer"})
	assert.Equal(t, combined, sequential)

	reversed := Filter(Filter(sample, Query{Role: "Backend Developer"}), Query{Company: "Orbit"})
	assert.Equal(t, combined, reversed)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	before := make([]models.Prospect, len(sample))
	copy(before, sample)
	_ = Filter(sample, Query{Stage: "Start"})
	assert.Equal(t, before, sample)
}
