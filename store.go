package thermalctl

import (
	"sort"
	"strings"
	"sync"

	"github.com/merritt-h/thermalctl/types"
)

// ResetMode selects which part of a State Store.Reset clears.
type ResetMode int

const (
	// ResetAll clears the entire record for a key, as if freshly created.
	ResetAll ResetMode = iota
	// ResetDeadzoneOnly clears only the learned dead-zone floor and its
	// hit counter, leaving gain/loss/profile state untouched.
	ResetDeadzoneOnly
)

// Store is the process-wide, per-key estimator/controller state (spec
// §4.2). Like helpers.Groups in the teacher, it guards an internal map
// with a single RWMutex and exposes a small, serialised-per-key API; the
// spec only requires independent keys to be safe under concurrent access,
// so one mutex for the whole map is sufficient.
type Store struct {
	mu      sync.RWMutex
	records map[string]*State
	params  Params
}

// NewStore returns an empty Store. params seeds the defaults used when a
// new key's record is created, and must be valid per Params.Validate.
func NewStore(params Params) *Store {
	return &Store{
		records: make(map[string]*State),
		params:  params,
	}
}

// GetOrCreate returns the record for key, creating it first if absent.
// A newly created record for a target-bucket key has its
// min_effective_percent seeded from a sibling bucket of the same
// controller/TRV pair if one already learned a value (spec §9
// supplemented feature: a dead-zone floor learned at one target is a
// reasonable prior at a nearby one; gain/loss are deliberately NOT
// carried over, since the bucketing exists precisely to keep those
// per-target).
func (s *Store) GetOrCreate(key string) *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.records[key]; ok {
		return st
	}
	st := newState(s.params)
	s.seedFromSiblings(key, st)
	s.records[key] = st
	return st
}

// seedFromSiblings copies a learned min_effective_percent from any
// existing bucket of the same controller/TRV pair into a freshly created
// record. Caller holds s.mu.
func (s *Store) seedFromSiblings(key string, st *State) {
	controllerID, trvID, ok := splitKey(key)
	if !ok {
		return
	}
	prefix := siblingPrefix(controllerID, trvID)
	var siblingKeys []string
	for k := range s.records {
		if strings.HasPrefix(k, prefix) {
			siblingKeys = append(siblingKeys, k)
		}
	}
	sort.Strings(siblingKeys)
	for _, k := range siblingKeys {
		sib := s.records[k]
		if sib.hasMinEffective {
			st.hasMinEffective = true
			st.minEffectivePct = sib.minEffectivePct
			return
		}
	}
}

// Reset clears a key's record per mode. Resetting an unknown key is a
// no-op in both modes: ResetAll has nothing to delete, and
// ResetDeadzoneOnly only mutates a record that already exists rather
// than creating one just to leave it unset.
func (s *Store) Reset(key string, mode ResetMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch mode {
	case ResetAll:
		delete(s.records, key)
	case ResetDeadzoneOnly:
		if st, ok := s.records[key]; ok {
			st.hasMinEffective = false
			st.minEffectivePct = 0
			st.deadZoneHits = 0
		}
	default:
		return types.ErrInvalidResetMode
	}
	return nil
}

// Clear removes every record, unconditionally. Supplemented from the
// reference implementation's ability to wipe all MPC state at once
// (distinct from per-key Reset).
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]*State)
}

// Keys returns every key currently in the store whose name starts with
// prefix, sorted. An empty prefix matches every key. Mirrors the
// reference implementation's prefix-scoped state export.
func (s *Store) Keys(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var keys []string
	for k := range s.records {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
