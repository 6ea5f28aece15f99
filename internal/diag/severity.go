package diag

// Severity ranks diagnostics; Bag.Sort orders by it descending so
// errors surface before warnings.
type Severity uint8

const (
	// SevInfo marks purely informational diagnostics.
	SevInfo Severity = iota
	// SevWarning marks advisory diagnostics that never fail a build.
	SevWarning
	// SevError marks diagnostics that fail the compile.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
