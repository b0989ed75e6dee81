package display

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{1, 100},
		{0.42, 42},
		{0.06, 6},
		{0.005, 1},
		{0.004999, 0},
		{0.735, 74},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percent(tt.in), "Percent(%v)", tt.in)
	}
}

func TestPercent_RangeForUnitInterval(t *testing.T) {
	for i := 0; i <= 10000; i++ {
		p := float64(i) / 10000
		got := Percent(p)
		require.GreaterOrEqual(t, got, 0)
		require.LessOrEqual(t, got, 100)
	}
}

func TestWinPct(t *testing.T) {
	v := func(f float64) *float64 { return &f }

	assert.Equal(t, ".000", WinPct(nil))
	assert.Equal(t, ".000", WinPct(v(0)))
	assert.Equal(t, "0.500", WinPct(v(0.5)))
	assert.Equal(t, "1.000", WinPct(v(1)))
	assert.Equal(t, "0.563", WinPct(v(9.0/16)), "exact ties round up")
	assert.Equal(t, "0.333", WinPct(v(1.0/3)))
}

func TestRating(t *testing.T) {
	v := func(f float64) *float64 { return &f }

	assert.Equal(t, "0.0", Rating(nil))
	assert.Equal(t, "78.5", Rating(v(78.5)))
	assert.Equal(t, "82.3", Rating(v(82.3)))
	assert.Equal(t, "90.0", Rating(v(90)))
	assert.Equal(t, "-3.3", Rating(v(-3.25)))
}

func TestToFixed(t *testing.T) {
	assert.Equal(t, "0.13", ToFixed(0.125, 2))
	assert.Equal(t, "2", ToFixed(1.5, 0))
	assert.Equal(t, "0.001", ToFixed(0.0005, 3))
	assert.Equal(t, "0.000", ToFixed(0.00001, 3))
	assert.Equal(t, "-0.0", ToFixed(-0.01, 1))
}

func TestRecord(t *testing.T) {
	assert.Equal(t, "3-3-0", Record(3, 3, 0))
	assert.Equal(t, "12-4-1", Record(12, 4, 1))
}

func TestHistoryDate(t *testing.T) {
	ts := time.Date(2026, time.October, 5, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "Oct 5, 2026, 03:04 PM", HistoryDate(ts, time.UTC))
	assert.Equal(t, "Invalid Date", HistoryDate(time.Time{}, time.UTC))
}

func TestSurface_AbsentElementsAreNoOps(t *testing.T) {
	s := NewSurface(PlayoffProb, HistoryList)

	assert.True(t, s.SetText(PlayoffProb, "42%"))
	assert.False(t, s.SetText(DivisionProb, "28%"))
	assert.False(t, s.SetWidth(PlayoffBar, 42))
	assert.True(t, s.SetHTML(HistoryList, "<div></div>"))
	assert.False(t, s.Has(GenerateBtn))
	assert.Nil(t, s.Trigger())

	snap := s.Snapshot()
	assert.Equal(t, "42%", snap.Text(PlayoffProb))
	assert.Equal(t, []string{HistoryList, PlayoffProb}, snap.IDs())
	assert.Nil(t, snap.Trigger)

	// a nil control swallows calls
	s.Trigger().Begin(LabelGenerating)
	s.Trigger().Settle(LabelUpdated, time.Millisecond)
	assert.Equal(t, ControlState{}, s.Trigger().State())
}

func TestSurface_SnapshotIsACopy(t *testing.T) {
	s := NewSurface(FullLayout()...)
	s.SetWidth(PlayoffBar, 42)

	snap := s.Snapshot()
	s.SetWidth(PlayoffBar, 50)

	w, ok := snap.Width(PlayoffBar)
	require.True(t, ok)
	assert.Equal(t, 42, w)
	_, ok = snap.Width(DivisionBar)
	assert.False(t, ok)
	require.NotNil(t, snap.Trigger)
	assert.Equal(t, ControlState{Label: LabelGenerate, Enabled: true}, *snap.Trigger)
}

type recorder struct {
	mu     sync.Mutex
	states []ControlState
}

func (r *recorder) record(s ControlState) {
	r.mu.Lock()
	r.states = append(r.states, s)
	r.mu.Unlock()
}

func (r *recorder) enables() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.states {
		if s.Enabled {
			n++
		}
	}
	return n
}

func TestControl_SettleRevertsOnce(t *testing.T) {
	c := NewControl(LabelGenerate)
	rec := &recorder{}
	c.Watch(rec.record)

	c.Begin(LabelGenerating)
	assert.Equal(t, ControlState{Label: LabelGenerating, Enabled: false}, c.State())

	c.Settle(LabelUpdated, 20*time.Millisecond)
	assert.Equal(t, ControlState{Label: LabelUpdated, Enabled: false}, c.State())

	require.Eventually(t, func() bool { return c.State().Enabled }, time.Second, 5*time.Millisecond)
	assert.Equal(t, LabelGenerate, c.State().Label)

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, 1, rec.enables())
}

func TestControl_NewActionCancelsPendingReset(t *testing.T) {
	c := NewControl(LabelGenerate)
	rec := &recorder{}
	c.Watch(rec.record)

	c.Begin(LabelGenerating)
	c.Settle(LabelError, 30*time.Millisecond)

	// second click before the first reset fires
	c.Begin(LabelGenerating)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, ControlState{Label: LabelGenerating, Enabled: false}, c.State())
	assert.Equal(t, 0, rec.enables())

	c.Settle(LabelUpdated, 10*time.Millisecond)
	require.Eventually(t, func() bool { return c.State().Enabled }, time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, rec.enables())
}

func TestControl_Stop(t *testing.T) {
	c := NewControl(LabelGenerate)
	c.Begin(LabelGenerating)
	c.Settle(LabelUpdated, 10*time.Millisecond)
	c.Stop()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, ControlState{Label: LabelUpdated, Enabled: false}, c.State())
}
