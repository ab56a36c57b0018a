package models

// LoadState is the load state of the client's data synchroniser.
//
//	Uninitialized --no credential--> Empty
//	Uninitialized --credential--> Loading --> Ready | Empty
//	Ready --mutation--> Ready
type LoadState int

const (
	LoadUninitialized LoadState = iota
	LoadLoading
	LoadReady
	LoadEmpty
)

func (s LoadState) String() string {
	switch s {
	case LoadUninitialized:
		return "uninitialized"
	case LoadLoading:
		return "loading"
	case LoadReady:
		return "ready"
	case LoadEmpty:
		return "empty"
	default:
		return "unknown"
	}
}
