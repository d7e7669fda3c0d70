package quota

import (
	"github.com/sirupsen/logrus"

	"github.com/zagrev/mesos/pkg/quantity"
)

// Tracker keeps per-role caps and running usage and makes admission
// decisions. A role with no quota set is unlimited. The tracker is not safe
// for concurrent use; the owning scheduler loop must serialize access.
type Tracker struct {
	log   *logrus.Entry
	roles map[string]*roleState
}

type roleState struct {
	limits quantity.ResourceLimits
	usage  quantity.ResourceQuantities
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		log:   logrus.WithField("component", "quota"),
		roles: make(map[string]*roleState),
	}
}

func (t *Tracker) state(role string) *roleState {
	state, ok := t.roles[role]
	if !ok {
		state = &roleState{}
		t.roles[role] = state
	}
	return state
}

// SetQuota installs or replaces the caps for a role. Existing usage is kept;
// it may already exceed the new caps, in which case further admissions fail
// until enough usage is released.
func (t *Tracker) SetQuota(role string, limits quantity.ResourceLimits) {
	t.state(role).limits = limits.Clone()
	t.log.WithField("role", role).Infof("quota limits set to %s", limits)
}

// RemoveQuota drops the caps for a role and reports whether any were set.
// Usage tracking for the role continues.
func (t *Tracker) RemoveQuota(role string) bool {
	state, ok := t.roles[role]
	if !ok || state.limits.Len() == 0 {
		return false
	}

	state.limits = quantity.ResourceLimits{}
	t.log.WithField("role", role).Info("quota limits removed")
	return true
}

// Admit checks whether the role's usage plus the requested amounts stays
// within its caps and records the new usage if it does.
func (t *Tracker) Admit(role string, request quantity.ResourceQuantities) bool {
	state := t.state(role)

	projected := state.usage.Plus(request)
	if !state.limits.ContainsQuantities(projected) {
		t.log.WithField("role", role).Debugf(
			"rejected %s: projected usage %s exceeds limits %s",
			request, projected, state.limits)
		return false
	}

	state.usage = projected
	t.log.WithField("role", role).Debugf("admitted %s, usage now %s", request, projected)
	return true
}

// Release subtracts finished usage from the role, saturating at zero.
func (t *Tracker) Release(role string, request quantity.ResourceQuantities) {
	state := t.state(role)
	state.usage.SubtractAll(request)
	t.log.WithField("role", role).Debugf("released %s, usage now %s", request, state.usage)
}

// Usage returns the role's current tracked usage.
func (t *Tracker) Usage(role string) quantity.ResourceQuantities {
	state, ok := t.roles[role]
	if !ok {
		return quantity.ResourceQuantities{}
	}
	return state.usage.Clone()
}

// Limits returns the role's current caps.
func (t *Tracker) Limits(role string) quantity.ResourceLimits {
	state, ok := t.roles[role]
	if !ok {
		return quantity.ResourceLimits{}
	}
	return state.limits.Clone()
}
