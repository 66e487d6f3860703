package schema

import "fmt"

// Scale is the number of decimal places used by a scaled integer.
// Example: Scale=8 means the integer value is scaled by 1e8.
type Scale int32

// Instrument describes a tradable instrument and its numeric scales.
type Instrument struct {
	ID         InstrumentID
	Venue      string
	PriceScale Scale
	SizeScale  Scale
}

// Registry stores instrument definitions keyed by instrument id.
type Registry struct {
	instruments map[InstrumentID]Instrument
	order       []InstrumentID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{instruments: make(map[InstrumentID]Instrument)}
}

// Add registers a new instrument.
func (r *Registry) Add(inst Instrument) error {
	if inst.ID == "" {
		return fmt.Errorf("instrument id is empty")
	}
	if inst.Venue == "" {
		return fmt.Errorf("instrument venue is empty: %s", inst.ID)
	}
	if inst.PriceScale < 0 || inst.SizeScale < 0 {
		return fmt.Errorf("instrument scale must be >= 0: %s", inst.ID)
	}
	if _, ok := r.instruments[inst.ID]; ok {
		return fmt.Errorf("instrument already exists: %s", inst.ID)
	}
	r.instruments[inst.ID] = inst
	r.order = append(r.order, inst.ID)
	return nil
}

// Instrument returns the instrument by id.
func (r *Registry) Instrument(id InstrumentID) (Instrument, bool) {
	inst, ok := r.instruments[id]
	return inst, ok
}

// Count returns the number of registered instruments.
func (r *Registry) Count() int {
	return len(r.instruments)
}

// At returns the instrument by insertion index.
func (r *Registry) At(index int) (Instrument, bool) {
	if index < 0 || index >= len(r.order) {
		return Instrument{}, false
	}
	return r.instruments[r.order[index]], true
}
