package types

// StoreOutcome classifies the result of a persistence call
type StoreOutcome int

const (
	// StoreOK - the call succeeded
	StoreOK StoreOutcome = iota
	// StoreEmpty - nothing stored under the key yet
	StoreEmpty
	// StoreCorrupt - the stored value could not be decoded
	StoreCorrupt
	// StoreFailed - the backing store returned an error
	StoreFailed
)

// String returns string representation
func (o StoreOutcome) String() string {
	switch o {
	case StoreOK:
		return "ok"
	case StoreEmpty:
		return "empty"
	case StoreCorrupt:
		return "corrupt"
	case StoreFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StoreStatus reports how a load or save went. Persistence is fail-open:
// callers always get usable data back and may inspect or log the status,
// but are never handed an error.
type StoreStatus struct {
	Outcome StoreOutcome
	Err     error
}

// OK reports whether the call reached the store without trouble. An empty
// store counts as OK.
func (s StoreStatus) OK() bool {
	return s.Outcome == StoreOK || s.Outcome == StoreEmpty
}
