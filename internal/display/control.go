package display

import (
	"sync"
	"time"
)

// ControlState is the visible state of a trigger control.
type ControlState struct {
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

// Control is a trigger button with a label and an enabled flag. Transient
// labels revert to the default after a delay; starting a new action or
// scheduling a new revert cancels any revert still pending. A nil *Control
// accepts every call and does nothing.
type Control struct {
	mu           sync.Mutex
	defaultLabel string
	state        ControlState
	pending      *time.Timer
	seq          uint64
	watchers     []func(ControlState)
}

// NewControl returns an enabled control showing defaultLabel.
func NewControl(defaultLabel string) *Control {
	return &Control{
		defaultLabel: defaultLabel,
		state:        ControlState{Label: defaultLabel, Enabled: true},
	}
}

// State returns the current label and enabled flag.
func (c *Control) State() ControlState {
	if c == nil {
		return ControlState{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Watch registers fn to be called after every state change.
func (c *Control) Watch(fn func(ControlState)) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.watchers = append(c.watchers, fn)
	c.mu.Unlock()
}

// Begin disables the control and shows label until the next Settle.
func (c *Control) Begin(label string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.cancelLocked()
	c.state = ControlState{Label: label, Enabled: false}
	c.notifyLocked()
}

// Settle shows label and reverts to the default label, enabled, after delay.
func (c *Control) Settle(label string, delay time.Duration) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.cancelLocked()
	c.state.Label = label
	seq := c.seq
	c.pending = time.AfterFunc(delay, func() { c.reset(seq) })
	c.notifyLocked()
}

// Stop cancels a pending revert without touching the visible state.
func (c *Control) Stop() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.cancelLocked()
	c.mu.Unlock()
}

func (c *Control) reset(seq uint64) {
	c.mu.Lock()
	if seq != c.seq {
		// superseded by a later Begin or Settle
		c.mu.Unlock()
		return
	}
	c.pending = nil
	c.state = ControlState{Label: c.defaultLabel, Enabled: true}
	c.notifyLocked()
}

func (c *Control) cancelLocked() {
	c.seq++
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

// notifyLocked releases c.mu before calling watchers.
func (c *Control) notifyLocked() {
	state := c.state
	watchers := append([]func(ControlState){}, c.watchers...)
	c.mu.Unlock()
	for _, fn := range watchers {
		fn(state)
	}
}
