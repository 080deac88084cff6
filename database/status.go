package database

import "context"

// ConnState classifies how usable the storage backend is at a point in
// time. The diagnostics endpoint renders these; nothing else branches on
// them.
type ConnState int

const (
	// StateNotConfigured: no connection URL/name was provided.
	StateNotConfigured ConnState = iota
	// StateNotConnected: configuration was present but no client exists.
	StateNotConnected
	// StateDegraded: a client exists but the backend is not answering.
	StateDegraded
	// StateHealthy: the backend answered a metadata query.
	StateHealthy
)

// Status is a non-authoritative snapshot of storage health.
type Status struct {
	State       ConnState
	Collections []string
	Err         error // degradation detail, only set for StateDegraded
}

// Check probes s with a collection listing. Failures land in the result,
// never in a returned error; s must be non-nil (a nil handle is classified
// by the caller, which knows whether configuration was attempted).
func Check(ctx context.Context, s Store) Status {
	names, err := s.CollectionNames(ctx)
	if err != nil {
		return Status{State: StateDegraded, Err: err}
	}
	return Status{State: StateHealthy, Collections: names}
}
