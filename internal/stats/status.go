/*
PURPOSE:
  Defines the closed vocabulary of solver termination statuses.
  Centralizes the code -> description mapping so that every solver
  reporting through solver-stats uses the same codes.

REQUIREMENTS:
  User-specified:
  - Fixed, closed set of status keys; no runtime extension.
  - Human-readable description per key.
  - Listing of all keys for CLI help / discoverability.

  Implementation-discovered:
  - Validation errors must carry the full valid-key list (usability
    contract: a caller with a typo should see what IS accepted).

ARCHITECTURE INTEGRATION:
  - Used by: internal/stats (record construction, field formatting)
  - Used by: internal/cli (statuses subcommand)

ERROR HANDLING:
  - ErrInvalidStatus for any key outside the set. Programmer error;
    propagates, never recovered internally.

IMPLEMENTATION RULES:
  - The description table is package-level and read-only after init.
  - Keep keys lowercase snake_case; they appear verbatim in logs.

USAGE:
  desc, err := stats.Describe(stats.StatusFirstOrder)

SELF-HEALING INSTRUCTIONS:
  - New statuses require a constant, a table entry, and (usually) a
    test update. Nothing else.

RELATED FILES:
  - internal/stats/stats.go

MAINTENANCE:
  - The key set is shared vocabulary across solvers; changing a key is
    a breaking change for downstream log consumers.
*/

package stats

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Status is a symbolic code naming why a solver stopped.
type Status string

const (
	StatusException     Status = "exception"
	StatusFirstOrder    Status = "first_order"
	StatusAcceptable    Status = "acceptable"
	StatusInfeasible    Status = "infeasible"
	StatusMaxEval       Status = "max_eval"
	StatusMaxIter       Status = "max_iter"
	StatusMaxTime       Status = "max_time"
	StatusNegPred       Status = "neg_pred"
	StatusNotDesc       Status = "not_desc"
	StatusSmallResidual Status = "small_residual"
	StatusSmallStep     Status = "small_step"
	StatusStalled       Status = "stalled"
	StatusUnbounded     Status = "unbounded"
	StatusUnknown       Status = "unknown"
	StatusUser          Status = "user"
)

// ErrInvalidStatus is returned when a status key is outside the closed
// vocabulary.
var ErrInvalidStatus = errors.New("invalid status")

// statusDescriptions is the closed vocabulary. Read-only after init.
var statusDescriptions = map[Status]string{
	StatusException:     "unhandled exception",
	StatusFirstOrder:    "first-order stationary",
	StatusAcceptable:    "solved to within acceptable tolerances",
	StatusInfeasible:    "problem may be infeasible",
	StatusMaxEval:       "maximum number of function evaluations",
	StatusMaxIter:       "maximum iteration",
	StatusMaxTime:       "maximum elapsed time",
	StatusNegPred:       "negative predicted reduction",
	StatusNotDesc:       "not a descent direction",
	StatusSmallResidual: "small residual",
	StatusSmallStep:     "step too small",
	StatusStalled:       "stalled",
	StatusUnbounded:     "objective function may be unbounded from below",
	StatusUnknown:       "unknown",
	StatusUser:          "user-requested stop",
}

// StatusInfo pairs a status key with its description.
type StatusInfo struct {
	Key         Status
	Description string
}

// Valid reports whether s belongs to the closed vocabulary.
func (s Status) Valid() bool {
	_, ok := statusDescriptions[s]
	return ok
}

// Describe returns the human-readable description of a status key.
// Keys outside the vocabulary yield ErrInvalidStatus, with the full
// valid-key list in the error message.
func Describe(s Status) (string, error) {
	desc, ok := statusDescriptions[s]
	if !ok {
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrInvalidStatus, string(s), strings.Join(validKeys(), ", "))
	}
	return desc, nil
}

// AllStatuses returns every (key, description) pair, sorted by key.
func AllStatuses() []StatusInfo {
	infos := make([]StatusInfo, 0, len(statusDescriptions))
	for k, d := range statusDescriptions {
		infos = append(infos, StatusInfo{Key: k, Description: d})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos
}

func validKeys() []string {
	keys := make([]string, 0, len(statusDescriptions))
	for k := range statusDescriptions {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}
