package stats

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// statsJSON is the wire shape for a record. Infinities are not valid
// JSON numbers, so float fields travel as strings.
type statsJSON struct {
	Status         string         `json:"status"`
	Solution       []float64      `json:"solution,omitempty"`
	Objective      string         `json:"objective"`
	DualFeas       string         `json:"dual_feas"`
	PrimalFeas     string         `json:"primal_feas"`
	Iter           int            `json:"iter"`
	ElapsedTime    string         `json:"elapsed_time"`
	Counters       map[string]int `json:"counters"`
	SolverSpecific map[string]any `json:"solver_specific,omitempty"`
}

// MarshalJSON encodes the record for JSON Lines storage.
func (s *ExecutionStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(statsJSON{
		Status:         string(s.status),
		Solution:       s.solution,
		Objective:      encodeFloat(s.objective),
		DualFeas:       encodeFloat(s.dualFeas),
		PrimalFeas:     encodeFloat(s.primalFeas),
		Iter:           s.iter,
		ElapsedTime:    encodeFloat(s.elapsedTime),
		Counters:       s.counters,
		SolverSpecific: s.solverSpecific,
	})
}

// UnmarshalJSON decodes a record written by MarshalJSON. The status is
// re-validated against the closed vocabulary.
func (s *ExecutionStats) UnmarshalJSON(data []byte) error {
	var raw statsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode execution stats: %w", err)
	}
	if !Status(raw.Status).Valid() {
		_, err := Describe(Status(raw.Status))
		return fmt.Errorf("decode execution stats: %w", err)
	}

	obj, err := decodeFloat(raw.Objective)
	if err != nil {
		return fmt.Errorf("decode execution stats: objective: %w", err)
	}
	dual, err := decodeFloat(raw.DualFeas)
	if err != nil {
		return fmt.Errorf("decode execution stats: dual_feas: %w", err)
	}
	primal, err := decodeFloat(raw.PrimalFeas)
	if err != nil {
		return fmt.Errorf("decode execution stats: primal_feas: %w", err)
	}
	elapsed, err := decodeFloat(raw.ElapsedTime)
	if err != nil {
		return fmt.Errorf("decode execution stats: elapsed_time: %w", err)
	}

	s.status = Status(raw.Status)
	s.solution = raw.Solution
	s.objective = obj
	s.dualFeas = dual
	s.primalFeas = primal
	s.iter = raw.Iter
	s.elapsedTime = elapsed
	s.counters = raw.Counters
	if s.counters == nil {
		s.counters = map[string]int{}
	}
	s.solverSpecific = raw.SolverSpecific
	return nil
}

// strconv round-trips infinities ("+Inf"/"-Inf") that encoding/json
// cannot represent as numbers.
func encodeFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func decodeFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
