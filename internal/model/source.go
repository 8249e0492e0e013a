package model

// Source records which tier satisfied the last full load. It is
// observational only.
type Source int

const (
	SourceUnknown Source = iota
	SourceRemote
	SourceLocal
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceRemote:
		return "remote"
	case SourceLocal:
		return "local"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// MarshalText lets Source travel as a plain string in JSON payloads.
func (s Source) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
