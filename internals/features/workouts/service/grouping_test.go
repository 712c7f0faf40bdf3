package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "eaglesfitness_backend/internals/features/workouts/model"
)

func entry(order int, group *int) model.ScheduleDayExercise {
	return model.ScheduleDayExercise{
		ID:          uuid.New(),
		ExerciseID:  uuid.New(),
		Order:       order,
		GroupNumber: group,
	}
}

func TestGroupDayExercises(t *testing.T) {
	a := entry(0, nil)
	b := entry(1, intPtr(2))
	c := entry(2, intPtr(1))
	d := entry(3, intPtr(2))
	e := entry(4, nil)

	groups := GroupDayExercises([]model.ScheduleDayExercise{a, b, c, d, e})
	require.Len(t, groups, 3)

	// circuits first by number, individual exercises last
	assert.Equal(t, "Group 1", groups[0].Label)
	require.Len(t, groups[0].Entries, 1)
	assert.Equal(t, c.ID, groups[0].Entries[0].ID)

	assert.Equal(t, "Group 2", groups[1].Label)
	require.Len(t, groups[1].Entries, 2)
	// entry order kept inside the circuit
	assert.Equal(t, b.ID, groups[1].Entries[0].ID)
	assert.Equal(t, d.ID, groups[1].Entries[1].ID)

	assert.Equal(t, "Individual", groups[2].Label)
	require.Len(t, groups[2].Entries, 2)
	assert.Equal(t, a.ID, groups[2].Entries[0].ID)
	assert.Equal(t, e.ID, groups[2].Entries[1].ID)
}

func TestGroupDayExercises_InputOrderIrrelevant(t *testing.T) {
	x := entry(0, intPtr(1))
	y := entry(1, intPtr(1))

	forward := GroupDayExercises([]model.ScheduleDayExercise{x, y})
	reversed := GroupDayExercises([]model.ScheduleDayExercise{y, x})
	require.Len(t, forward, 1)
	require.Len(t, reversed, 1)
	assert.Equal(t, forward[0].Entries[0].ID, reversed[0].Entries[0].ID)
	assert.Equal(t, forward[0].Entries[1].ID, reversed[0].Entries[1].ID)
}

func TestGroupDayExercises_Empty(t *testing.T) {
	assert.Empty(t, GroupDayExercises(nil))
}
