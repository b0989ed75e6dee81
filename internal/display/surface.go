// Package display holds the dashboard's display surface: named placeholder
// elements, a history container and the generate trigger. Writes to
// elements that are not part of the layout are silently dropped.
package display

import (
	"html/template"
	"sort"
	"sync"
)

// Element ids of the dashboard layout.
const (
	PlayoffProb    = "playoff-prob"
	DivisionProb   = "division-prob"
	ConferenceProb = "conference-prob"
	SuperbowlProb  = "superbowl-prob"
	Confidence     = "confidence"

	PlayoffBar    = "playoff-bar"
	DivisionBar   = "division-bar"
	ConferenceBar = "conference-bar"
	SuperbowlBar  = "superbowl-bar"

	RecordText = "record"
	WinPctText = "win-pct"
	OffRating  = "off-rating"
	DefRating  = "def-rating"

	HistoryList = "history-list"
	GenerateBtn = "generate-btn"
)

// Trigger labels.
const (
	LabelGenerate   = "GENERATE NEW PREDICTION"
	LabelGenerating = "GENERATING..."
	LabelUpdated    = "PREDICTION UPDATED"
	LabelError      = "ERROR - TRY AGAIN"
)

// FullLayout lists every element id the dashboard page defines.
func FullLayout() []string {
	return []string{
		PlayoffProb, DivisionProb, ConferenceProb, SuperbowlProb, Confidence,
		PlayoffBar, DivisionBar, ConferenceBar, SuperbowlBar,
		RecordText, WinPctText, OffRating, DefRating,
		HistoryList, GenerateBtn,
	}
}

// Element is one placeholder. Text elements use Text, bars use Width (a
// percentage), containers use HTML.
type Element struct {
	ID    string        `json:"id"`
	Text  string        `json:"text,omitempty"`
	Width *int          `json:"width,omitempty"`
	HTML  template.HTML `json:"html,omitempty"`
}

// Snapshot is a point-in-time copy of the surface.
type Snapshot struct {
	Elements map[string]Element `json:"elements"`
	Trigger  *ControlState      `json:"trigger,omitempty"`
}

// Text returns the text of element id, or "" if absent.
func (s Snapshot) Text(id string) string {
	return s.Elements[id].Text
}

// Width returns the bar width of element id and whether one was set.
func (s Snapshot) Width(id string) (int, bool) {
	el, ok := s.Elements[id]
	if !ok || el.Width == nil {
		return 0, false
	}
	return *el.Width, true
}

// HTML returns the markup of container id.
func (s Snapshot) HTML(id string) template.HTML {
	return s.Elements[id].HTML
}

// IDs returns the element ids in sorted order.
func (s Snapshot) IDs() []string {
	ids := make([]string, 0, len(s.Elements))
	for id := range s.Elements {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Surface is the set of elements a page exposes.
type Surface struct {
	mu       sync.RWMutex
	elements map[string]*Element
	trigger  *Control
}

// NewSurface builds a surface with the given element ids. Including
// GenerateBtn creates the trigger control.
func NewSurface(ids ...string) *Surface {
	s := &Surface{elements: make(map[string]*Element, len(ids))}
	for _, id := range ids {
		if id == GenerateBtn {
			s.trigger = NewControl(LabelGenerate)
			continue
		}
		s.elements[id] = &Element{ID: id}
	}
	return s
}

// Has reports whether id is part of the layout.
func (s *Surface) Has(id string) bool {
	if id == GenerateBtn {
		return s.trigger != nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.elements[id]
	return ok
}

// Trigger returns the generate control, nil when the layout has none.
func (s *Surface) Trigger() *Control {
	return s.trigger
}

// SetText writes text content. It reports whether the element exists.
func (s *Surface) SetText(id, text string) bool {
	return s.update(id, func(el *Element) { el.Text = text })
}

// SetWidth writes a bar width percentage.
func (s *Surface) SetWidth(id string, pct int) bool {
	return s.update(id, func(el *Element) { el.Width = &pct })
}

// SetHTML replaces a container's markup.
func (s *Surface) SetHTML(id string, html template.HTML) bool {
	return s.update(id, func(el *Element) { el.HTML = html })
}

func (s *Surface) update(id string, fn func(*Element)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.elements[id]
	if !ok {
		return false
	}
	fn(el)
	return true
}

// Snapshot copies the current element values and trigger state.
func (s *Surface) Snapshot() Snapshot {
	s.mu.RLock()
	out := Snapshot{Elements: make(map[string]Element, len(s.elements))}
	for id, el := range s.elements {
		cp := *el
		if el.Width != nil {
			w := *el.Width
			cp.Width = &w
		}
		out.Elements[id] = cp
	}
	s.mu.RUnlock()

	if s.trigger != nil {
		state := s.trigger.State()
		out.Trigger = &state
	}
	return out
}
