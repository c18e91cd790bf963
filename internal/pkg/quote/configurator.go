package quote

import (
	"log"
	"sync"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"github.com/smartfixwerk/SmartfixWerk/app/repository"
)

// Configurator is the effect layer around the pure reducer: it performs
// the catalog fetch each transition implies and feeds the result back in
// as an event. A fetch failure leaves the state untouched so the visitor
// can simply reselect.
type Configurator struct {
	repo repository.RepairPriceRepository

	mu    sync.Mutex
	state State
	epoch uint64
}

// NewConfigurator creates a configurator over the given catalog repository
func NewConfigurator(repo repository.RepairPriceRepository) *Configurator {
	return &Configurator{repo: repo, state: NewState()}
}

// State returns a copy of the current state
func (cf *Configurator) State() State {
	cf.mu.Lock()
	defer cf.mu.Unlock()
	return cf.state
}

// Restore rehydrates a configurator from a persisted selection, e.g. the
// visitor's session. Invalid combinations fall back to the initial state.
func (cf *Configurator) Restore(manufacturer, model string) {
	cf.mu.Lock()
	defer cf.mu.Unlock()
	switch {
	case manufacturer != "" && model != "":
		// Repairs stay nil; step 3 rows are refetched on demand.
		cf.state = State{Step: StepRepairs, Manufacturer: manufacturer, Model: model}
	case manufacturer != "":
		cf.state = State{Step: StepModel, Manufacturer: manufacturer}
	default:
		cf.state = NewState()
	}
}

// Manufacturers lists the distinct manufacturers with their model counts
// for step 1. Pure read, no transition.
func (cf *Configurator) Manufacturers() ([]models.ManufacturerSummary, error) {
	return cf.repo.GetManufacturers()
}

// SelectManufacturer applies the step 1 selection and fetches the models
// for step 2
func (cf *Configurator) SelectManufacturer(manufacturer string) ([]string, error) {
	cf.mu.Lock()
	epoch := cf.epoch
	cf.mu.Unlock()

	modelNames, err := cf.repo.GetModels(manufacturer)
	if err != nil {
		log.Printf("quote: failed to fetch models for %q: %v", manufacturer, err)
		return nil, err
	}

	cf.mu.Lock()
	defer cf.mu.Unlock()
	if cf.epoch != epoch {
		// The visitor navigated away while the fetch was in flight;
		// discard the stale result.
		return modelNames, nil
	}
	cf.state = Reduce(cf.state, EventSelectManufacturer{Manufacturer: manufacturer})
	return modelNames, nil
}

// SelectModel applies the step 2 selection and resolves the repair list
// for step 3. The manufacturer must already be selected.
func (cf *Configurator) SelectModel(model string) ([]models.RepairPrice, error) {
	cf.mu.Lock()
	manufacturer := cf.state.Manufacturer
	epoch := cf.epoch
	cf.mu.Unlock()

	if manufacturer == "" {
		return nil, ErrNoManufacturer
	}

	return cf.resolveRepairs(manufacturer, model, epoch)
}

// ResolveSearch is the search shortcut: the chosen search result sets
// manufacturer and model directly and jumps straight to step 3
func (cf *Configurator) ResolveSearch(manufacturer, model string) ([]models.RepairPrice, error) {
	cf.mu.Lock()
	epoch := cf.epoch
	cf.mu.Unlock()

	return cf.resolveRepairs(manufacturer, model, epoch)
}

func (cf *Configurator) resolveRepairs(manufacturer, model string, epoch uint64) ([]models.RepairPrice, error) {
	rows, err := cf.repo.GetRepairs(manufacturer, model)
	if err != nil {
		log.Printf("quote: failed to fetch repairs for %q %q: %v", manufacturer, model, err)
		return nil, err
	}

	cf.mu.Lock()
	defer cf.mu.Unlock()
	if cf.epoch != epoch {
		return SortRepairs(rows), nil
	}
	cf.state = Reduce(cf.state, EventRepairsResolved{
		Manufacturer: manufacturer,
		Model:        model,
		Repairs:      rows,
	})
	return cf.state.Repairs, nil
}

// Back steps one step backwards and invalidates any in-flight fetch
func (cf *Configurator) Back() State {
	cf.mu.Lock()
	defer cf.mu.Unlock()
	cf.epoch++
	cf.state = Reduce(cf.state, EventBack{})
	return cf.state
}

// Restart resets the flow and invalidates any in-flight fetch
func (cf *Configurator) Restart() State {
	cf.mu.Lock()
	defer cf.mu.Unlock()
	cf.epoch++
	cf.state = Reduce(cf.state, EventRestart{})
	return cf.state
}
