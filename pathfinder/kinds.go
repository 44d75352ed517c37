package pathfinder

import (
	"fmt"
	"strings"
)

// AlgorithmKind selects the search run for a Request.
type AlgorithmKind int

const (
	BFS AlgorithmKind = iota
	DFS
	Dijkstra
	AStar
	JPS
	JPSPlus
)

var algorithmNames = [...]string{
	BFS:      "bfs",
	DFS:      "dfs",
	Dijkstra: "dijkstra",
	AStar:    "astar",
	JPS:      "jps",
	JPSPlus:  "jps_plus",
}

// Valid reports whether k is one of the declared kinds.
func (k AlgorithmKind) Valid() bool { return k >= BFS && int(k) < len(algorithmNames) }

// String returns the snake_case name of k.
func (k AlgorithmKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("algorithm(%d)", int(k))
	}

	return algorithmNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k AlgorithmKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, k)
	}

	return []byte(algorithmNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *AlgorithmKind) UnmarshalText(text []byte) error {
	i, err := lookup(algorithmNames[:], text)
	if err != nil {
		return err
	}
	*k = AlgorithmKind(i)

	return nil
}

// ReprocessKind selects the post-processing applied to a raw path.
type ReprocessKind int

const (
	// ReprocessNone copies the raw path.
	ReprocessNone ReprocessKind = iota
	// ReprocessDefault collapses the path by line of sight.
	ReprocessDefault
	// ReprocessTheta replans any-angle waypoints with Theta*.
	ReprocessTheta
)

var reprocessNames = [...]string{
	ReprocessNone:    "none",
	ReprocessDefault: "default",
	ReprocessTheta:   "theta",
}

// Valid reports whether k is one of the declared kinds.
func (k ReprocessKind) Valid() bool { return k >= ReprocessNone && int(k) < len(reprocessNames) }

// String returns the name of k.
func (k ReprocessKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("reprocess(%d)", int(k))
	}

	return reprocessNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k ReprocessKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, k)
	}

	return []byte(reprocessNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ReprocessKind) UnmarshalText(text []byte) error {
	i, err := lookup(reprocessNames[:], text)
	if err != nil {
		return err
	}
	*k = ReprocessKind(i)

	return nil
}

func lookup(names []string, text []byte) (int, error) {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
}
