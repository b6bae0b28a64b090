// Implements the simulation driver: an initial safety check followed by a
// strictly ordered replay of resource requests against evolving state.

package sim

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Request pairs a process id with the resources it asks for. The yaml tags
// match the scenario file schema (scenario.go).
type Request struct {
	ProcessID int    `yaml:"process"`
	Resources Vector `yaml:"request"`
}

// SimulationReport aggregates one full replay of a request sequence.
type SimulationReport struct {
	RunID     string // unique id for this run, for correlating logs and output
	Initial   SafetyReport
	Decisions []RequestDecision // one per request; empty when the initial state is unsafe
	Granted   int
	Denied    int
}

// RunSimulation validates the snapshot, reports its initial safety, then
// replays requests in order. An unsafe initial state short-circuits the
// replay: simulating requests from a state that already risks deadlock is
// meaningless, so Decisions stays empty.
//
// The replay folds over a working (available, allocation) pair: a granted
// request is committed into the accumulator before the next request is
// evaluated, a denied request leaves it untouched. Outcomes are therefore
// order-sensitive and non-commutative by design.
func RunSimulation(st State, requests []Request) (*SimulationReport, error) {
	if err := ValidateState(st); err != nil {
		return nil, err
	}
	for idx, req := range requests {
		if err := validateRequest(st, idx, req); err != nil {
			return nil, err
		}
	}

	report := &SimulationReport{RunID: uuid.NewString()}
	report.Initial = IsSafeState(st.Available, st.Max, st.Allocation)
	if !report.Initial.Safe {
		logrus.Infof("simulation %s: initial state unsafe, skipping %d requests", report.RunID, len(requests))
		return report, nil
	}

	work := st.Clone()
	for _, req := range requests {
		decision := ResourceRequest(work, req.ProcessID, req.Resources)
		if decision.Granted {
			subFrom(work.Available, req.Resources)
			addInto(work.Allocation[req.ProcessID], req.Resources)
			report.Granted++
		} else {
			report.Denied++
		}
		report.Decisions = append(report.Decisions, decision)
	}
	logrus.Infof("simulation %s: %d granted, %d denied", report.RunID, report.Granted, report.Denied)
	return report, nil
}
