package module

import "fmt"

// Type selects what a generation run produces.
type Type string

const (
	TypeWeb   Type = "web"   // pages, page controller, menu entry
	TypeAPI   Type = "api"   // as web, with a JSON controller
	TypePlain Type = "plain" // folders and manifest only
)

// ParseType parses a --type flag value. Empty means web.
func ParseType(s string) (Type, error) {
	if s == "" {
		return TypeWeb, nil
	}
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("invalid module type %q (valid: web, api, plain)", s)
	}
	return t, nil
}

// Valid reports whether t is a known type.
func (t Type) Valid() bool {
	switch t {
	case TypeWeb, TypeAPI, TypePlain:
		return true
	}
	return false
}

// IsPlain reports whether the run produces a bare module.
func (t Type) IsPlain() bool {
	return t == TypePlain
}

// State is a step of a generation run.
type State int

const (
	StateNotStarted State = iota
	StateFoldersCreated
	StateManifestWritten
	StateFilesWritten
	StateResourcesGenerated
	StateMenuRegistered
	StateActivated
	StateDone
)

var stateNames = map[State]string{
	StateNotStarted:         "not-started",
	StateFoldersCreated:     "folders-created",
	StateManifestWritten:    "manifest-written",
	StateFilesWritten:       "files-written",
	StateResourcesGenerated: "resources-generated",
	StateMenuRegistered:     "menu-registered",
	StateActivated:          "activated",
	StateDone:               "done",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Next returns the state following s for a run of type t. Plain runs go
// from ManifestWritten straight to Activated. Done is terminal.
func (s State) Next(t Type) State {
	switch {
	case s == StateDone:
		return StateDone
	case s == StateManifestWritten && t.IsPlain():
		return StateActivated
	default:
		return s + 1
	}
}

// Path returns every state a successful run of type t passes through.
func Path(t Type) []State {
	states := []State{StateNotStarted}
	for s := StateNotStarted; s != StateDone; {
		s = s.Next(t)
		states = append(states, s)
	}
	return states
}
