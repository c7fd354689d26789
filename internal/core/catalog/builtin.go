package catalog

import "breathwork/internal/core/model"

// Built-in pattern ids.
const (
	Box            = "box"
	FourSevenEight = "4-7-8"
	Diaphragmatic  = "diaphragmatic"
)

// Builtin returns the patterns every catalog starts from.
func Builtin() []model.Pattern {
	return []model.Pattern{
		{
			ID:   Box,
			Name: "Box Breathing",
			Phases: []model.Phase{
				{Label: "Inhale", Duration: 4},
				{Label: "Hold", Duration: 4},
				{Label: "Exhale", Duration: 4},
				{Label: "Hold", Duration: 4},
			},
		},
		{
			ID:   FourSevenEight,
			Name: "4-7-8 Breathing",
			Phases: []model.Phase{
				{Label: "Inhale", Duration: 4},
				{Label: "Hold", Duration: 7},
				{Label: "Exhale", Duration: 8},
				{Label: "Rest", Duration: 0},
			},
		},
		{
			ID:   Diaphragmatic,
			Name: "Diaphragmatic",
			Phases: []model.Phase{
				{Label: "Inhale", Duration: 6},
				{Label: "Pause", Duration: 2},
				{Label: "Exhale", Duration: 6},
				{Label: "Pause", Duration: 2},
			},
		},
	}
}
