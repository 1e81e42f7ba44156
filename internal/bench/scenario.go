package bench

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrUnknownScenario is returned for a scenario name with an unknown operation or list kind.
	ErrUnknownScenario = errors.New("unknown scenario")
	// ErrOrderMismatch is returned when a walked list does not yield its values last-in-first-out.
	ErrOrderMismatch = errors.New("iteration order mismatch")
)

// Op is the operation a scenario times.
type Op string

const (
	// OpPush builds a fresh list of Size sequential integers every round.
	OpPush Op = "push"
	// OpIter walks a prebuilt list every round, checking the values come out last-in-first-out.
	OpIter Op = "iter"
	// OpIterParallel walks clones of one persistent stack from Parallelism goroutines every round.
	OpIterParallel Op = "iter-parallel"
)

// Scenario is one <op>/<kind> pair.
type Scenario struct {
	Op   Op
	Kind ListKind
}

func (s Scenario) String() string {
	return string(s.Op) + "/" + string(s.Kind)
}

// ParseScenario parses a scenario name of the form <op>/<kind>.
func ParseScenario(name string) (Scenario, error) {
	op, kind, ok := strings.Cut(name, "/")
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %q is not of the form <op>/<kind>", ErrUnknownScenario, name)
	}

	s := Scenario{Op: Op(op), Kind: ListKind(kind)}
	if !slices.Contains(listKinds, s.Kind) {
		return Scenario{}, fmt.Errorf("%w: %q has unknown list kind %q", ErrUnknownScenario, name, kind)
	}

	switch s.Op {
	case OpPush, OpIter:
	case OpIterParallel:
		if s.Kind != KindPersistent {
			return Scenario{}, fmt.Errorf("%w: %q is only supported for %q", ErrUnknownScenario, op, KindPersistent)
		}
	default:
		return Scenario{}, fmt.Errorf("%w: %q has unknown operation %q", ErrUnknownScenario, name, op)
	}

	return s, nil
}

// Scenarios parses names, dropping duplicates while keeping their first position.
func Scenarios(names []string) ([]Scenario, error) {
	scenarios := make([]Scenario, 0, len(names))
	for _, name := range names {
		s, err := ParseScenario(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		if !slices.Contains(scenarios, s) {
			scenarios = append(scenarios, s)
		}
	}
	return scenarios, nil
}
