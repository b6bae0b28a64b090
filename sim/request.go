// Implements request arbitration: validate a single process's resource
// request against its remaining claim and the free pool, then re-check
// safety on the tentatively granted state.

package sim

import (
	"github.com/sirupsen/logrus"
)

// DenialReason classifies why a resource request was refused.
type DenialReason string

const (
	// DenialExceedsClaim means the request is larger than the process's
	// remaining declared maximum.
	DenialExceedsClaim DenialReason = "exceeds maximum claim"
	// DenialNotAvailable means the request is larger than the free pool.
	DenialNotAvailable DenialReason = "resources not available"
	// DenialUnsafe means granting would leave a state with no safe
	// finishing order.
	DenialUnsafe DenialReason = "resulting state would be unsafe"
)

// RequestDecision records the outcome of arbitrating one resource request.
// It is pure data; the rendering host decides how to present it.
type RequestDecision struct {
	ProcessID     int
	Request       Vector
	Granted       bool
	Reason        DenialReason // empty when granted
	ResourceIndex int          // first offending resource type for structural denials; -1 otherwise
	SafeSequence  []int        // finishing order of the post-grant state; set only when granted
	Unsafe        []int        // processes unable to finish; set only for DenialUnsafe
}

// ResourceRequest decides whether processID may be granted req on top of
// st. The checks short-circuit in a fixed order: claim exceedance, then
// availability (both structural, reported with the first offending resource
// index), and only then the safety re-check on a tentative copy. The
// caller-visible state is never mutated; committing a grant is the
// caller's decision.
func ResourceRequest(st State, processID int, req Vector) RequestDecision {
	decision := RequestDecision{ProcessID: processID, Request: req.Clone(), ResourceIndex: -1}

	need := st.Need(processID)
	for j := range req {
		if req[j] > at(need, j) {
			decision.Reason = DenialExceedsClaim
			decision.ResourceIndex = j
			logrus.Debugf("request: process %d denied at resource %d: %s", processID, j, DenialExceedsClaim)
			return decision
		}
	}
	for j := range req {
		if req[j] > at(st.Available, j) {
			decision.Reason = DenialNotAvailable
			decision.ResourceIndex = j
			logrus.Debugf("request: process %d denied at resource %d: %s", processID, j, DenialNotAvailable)
			return decision
		}
	}

	// Tentatively grant on a private copy and re-check safety.
	tentative := st.Clone()
	subFrom(tentative.Available, req)
	addInto(tentative.Allocation[processID], req)
	report := IsSafeState(tentative.Available, tentative.Max, tentative.Allocation)
	if !report.Safe {
		decision.Reason = DenialUnsafe
		decision.Unsafe = report.Unfinished
		logrus.Debugf("request: process %d denied: %s (unfinished %v)", processID, DenialUnsafe, report.Unfinished)
		return decision
	}

	decision.Granted = true
	decision.SafeSequence = report.SafeSequence
	logrus.Debugf("request: process %d granted %v, safe sequence %v", processID, req, report.SafeSequence)
	return decision
}
