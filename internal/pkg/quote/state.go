package quote

import (
	"sort"
	"strings"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
)

// Step identifies where the visitor is in the three-step narrowing flow
type Step int

const (
	StepManufacturer Step = iota + 1 // choose manufacturer
	StepModel                        // choose model
	StepRepairs                      // resolved repair list
)

// State is the configurator cursor. Model is only ever set together with
// Manufacturer, and Repairs only together with both.
type State struct {
	Step         Step
	Manufacturer string
	Model        string
	Repairs      []models.RepairPrice
}

// NewState returns the initial configurator state
func NewState() State {
	return State{Step: StepManufacturer}
}

// Event is one user action or fetch completion applied to the state
type Event interface {
	isEvent()
}

// EventSelectManufacturer moves from step 1 to step 2
type EventSelectManufacturer struct {
	Manufacturer string
}

// EventRepairsResolved carries the fetched repair rows for the selected
// (manufacturer, model) pair, completing the move to step 3. It is also
// how the search shortcut enters the flow.
type EventRepairsResolved struct {
	Manufacturer string
	Model        string
	Repairs      []models.RepairPrice
}

// EventBack moves one step backwards, clearing that step's selection
type EventBack struct{}

// EventRestart resets the whole flow to step 1
type EventRestart struct{}

func (EventSelectManufacturer) isEvent() {}
func (EventRepairsResolved) isEvent()    {}
func (EventBack) isEvent()               {}
func (EventRestart) isEvent()            {}

// Reduce applies one event to the state and returns the next state. It is
// pure: fetches happen in the Configurator, which feeds their results back
// in as events. Events that violate the step invariants leave the state
// unchanged.
func Reduce(state State, event Event) State {
	switch e := event.(type) {
	case EventSelectManufacturer:
		if e.Manufacturer == "" {
			return state
		}
		return State{Step: StepModel, Manufacturer: e.Manufacturer}

	case EventRepairsResolved:
		if e.Manufacturer == "" || e.Model == "" {
			return state
		}
		return State{
			Step:         StepRepairs,
			Manufacturer: e.Manufacturer,
			Model:        e.Model,
			Repairs:      SortRepairs(e.Repairs),
		}

	case EventBack:
		switch state.Step {
		case StepRepairs:
			return State{Step: StepModel, Manufacturer: state.Manufacturer}
		case StepModel:
			return State{Step: StepManufacturer}
		}
		return state

	case EventRestart:
		return NewState()
	}

	return state
}

// repairTypeRank returns the sort precedence class of a repair type:
// display repairs first, battery repairs second, everything else last
func repairTypeRank(repairType string) int {
	lower := strings.ToLower(repairType)
	switch {
	case strings.Contains(lower, "display"):
		return 0
	case strings.Contains(lower, "battery"):
		return 1
	default:
		return 2
	}
}

// SortRepairs orders a resolved repair list by the fixed display
// precedence: display rows, then battery rows, then the rest
// alphabetically by repair type. The input slice is not modified.
func SortRepairs(rows []models.RepairPrice) []models.RepairPrice {
	sorted := make([]models.RepairPrice, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := repairTypeRank(sorted[i].RepairType), repairTypeRank(sorted[j].RepairType)
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(sorted[i].RepairType) < strings.ToLower(sorted[j].RepairType)
	})
	return sorted
}
