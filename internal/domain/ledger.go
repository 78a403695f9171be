package domain

// Ledger is the per-user discovery record (pokedex): which forms were ever
// displayed and how many times each form was reached through feeding.
type Ledger struct {
	Discovered    []string       `json:"discovered"`
	RaisingCounts map[string]int `json:"raising_counts"`
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		Discovered:    []string{},
		RaisingCounts: map[string]int{},
	}
}

// HasDiscovered reports whether the image key was ever recorded.
func (l *Ledger) HasDiscovered(imageKey string) bool {
	for _, key := range l.Discovered {
		if key == imageKey {
			return true
		}
	}
	return false
}

// Discover records the image key and reports whether the ledger changed.
func (l *Ledger) Discover(imageKey string) bool {
	if l.HasDiscovered(imageKey) {
		return false
	}
	l.Discovered = append(l.Discovered, imageKey)
	return true
}

// IncrementRaising bumps the raising count of the image key.
func (l *Ledger) IncrementRaising(imageKey string) {
	if l.RaisingCounts == nil {
		l.RaisingCounts = map[string]int{}
	}
	l.RaisingCounts[imageKey]++
}

// RaisingCount returns how many times the form was reached by levelling up.
func (l *Ledger) RaisingCount(imageKey string) int {
	return l.RaisingCounts[imageKey]
}
