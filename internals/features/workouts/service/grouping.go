// file: internals/features/workouts/service/grouping.go
package service

import (
	"fmt"
	"sort"

	model "eaglesfitness_backend/internals/features/workouts/model"
)

// ExerciseGroup is the display shape of a day's entries: individual
// exercises each stand alone, entries sharing a group_number form one
// circuit block.
type ExerciseGroup struct {
	Label   string                      `json:"label"` // "Individual" or "Group N"
	Entries []model.ScheduleDayExercise `json:"entries"`
}

// GroupDayExercises folds a day's entries into display groups. Circuit
// groups come first ordered by group number, each keeping its entries in
// entry order, then individual entries last in entry order.
func GroupDayExercises(entries []model.ScheduleDayExercise) []ExerciseGroup {
	sorted := make([]model.ScheduleDayExercise, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	var individual []model.ScheduleDayExercise
	byGroup := map[int][]model.ScheduleDayExercise{}
	var groupNumbers []int

	for _, e := range sorted {
		if e.GroupNumber == nil {
			individual = append(individual, e)
			continue
		}
		n := *e.GroupNumber
		if _, seen := byGroup[n]; !seen {
			groupNumbers = append(groupNumbers, n)
		}
		byGroup[n] = append(byGroup[n], e)
	}
	sort.Ints(groupNumbers)

	var out []ExerciseGroup
	for _, n := range groupNumbers {
		out = append(out, ExerciseGroup{
			Label:   fmt.Sprintf("Group %d", n),
			Entries: byGroup[n],
		})
	}
	if len(individual) > 0 {
		out = append(out, ExerciseGroup{Label: "Individual", Entries: individual})
	}
	return out
}
