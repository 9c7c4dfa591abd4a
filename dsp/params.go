// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ik5/audbridge/audio"
)

// ControlKind tells which UI call declared a control.
type ControlKind int

const (
	Button ControlKind = iota
	CheckButton
	Slider
	NumEntry
	Bargraph
)

func (k ControlKind) String() string {
	switch k {
	case Button:
		return "button"
	case CheckButton:
		return "checkbox"
	case Slider:
		return "slider"
	case NumEntry:
		return "nentry"
	case Bargraph:
		return "bargraph"
	default:
		return fmt.Sprintf("ControlKind(%d)", int(k))
	}
}

// Control is one declared parameter.
type Control struct {
	Path           string
	Kind           ControlKind
	Zone           *audio.Sample
	Init, Min, Max audio.Sample
	Step           audio.Sample
	Meta           map[string]string
}

// Params is a UI that addresses every control by a slash-separated path made
// of the enclosing box labels and the control label, e.g.
// "/Mixer/Channel 3/Level".
//
// Only the addressing is kept; layout hints of the boxes are ignored.
type Params struct {
	boxes    []string
	controls map[string]*Control
	pending  map[*audio.Sample]map[string]string
}

var _ UI = (*Params)(nil)

func NewParams() *Params {
	return &Params{
		controls: make(map[string]*Control),
		pending:  make(map[*audio.Sample]map[string]string),
	}
}

func (p *Params) OpenTabBox(label string)        { p.boxes = append(p.boxes, label) }
func (p *Params) OpenHorizontalBox(label string) { p.boxes = append(p.boxes, label) }
func (p *Params) OpenVerticalBox(label string)   { p.boxes = append(p.boxes, label) }

func (p *Params) CloseBox() {
	if len(p.boxes) > 0 {
		p.boxes = p.boxes[:len(p.boxes)-1]
	}
}

func (p *Params) AddButton(label string, zone *audio.Sample) {
	p.add(label, Control{Kind: Button, Zone: zone, Max: 1, Step: 1})
}

func (p *Params) AddCheckButton(label string, zone *audio.Sample) {
	p.add(label, Control{Kind: CheckButton, Zone: zone, Max: 1, Step: 1})
}

func (p *Params) AddVerticalSlider(label string, zone *audio.Sample, init, min, max, step audio.Sample) {
	p.add(label, Control{Kind: Slider, Zone: zone, Init: init, Min: min, Max: max, Step: step})
}

func (p *Params) AddHorizontalSlider(label string, zone *audio.Sample, init, min, max, step audio.Sample) {
	p.add(label, Control{Kind: Slider, Zone: zone, Init: init, Min: min, Max: max, Step: step})
}

func (p *Params) AddNumEntry(label string, zone *audio.Sample, init, min, max, step audio.Sample) {
	p.add(label, Control{Kind: NumEntry, Zone: zone, Init: init, Min: min, Max: max, Step: step})
}

func (p *Params) AddHorizontalBargraph(label string, zone *audio.Sample, min, max audio.Sample) {
	p.add(label, Control{Kind: Bargraph, Zone: zone, Min: min, Max: max})
}

func (p *Params) AddVerticalBargraph(label string, zone *audio.Sample, min, max audio.Sample) {
	p.add(label, Control{Kind: Bargraph, Zone: zone, Min: min, Max: max})
}

// Declare attaches metadata to the next control declared with zone.
// Declarations on boxes (nil zone) are ignored.
func (p *Params) Declare(zone *audio.Sample, key, value string) {
	if zone == nil {
		return
	}
	m := p.pending[zone]
	if m == nil {
		m = make(map[string]string)
		p.pending[zone] = m
	}
	m[key] = value
}

func (p *Params) add(label string, c Control) {
	c.Path = "/" + strings.Join(append(slices.Clone(p.boxes), label), "/")
	c.Meta = p.pending[c.Zone]
	delete(p.pending, c.Zone)
	p.controls[c.Path] = &c
}

// Paths returns every control path in sorted order.
func (p *Params) Paths() []string {
	paths := make([]string, 0, len(p.controls))
	for path := range p.controls {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

// Control returns a copy of the control at path.
func (p *Params) Control(path string) (Control, bool) {
	c, ok := p.controls[path]
	if !ok {
		return Control{}, false
	}
	return *c, true
}

// Get reads the current value of the control at path.
func (p *Params) Get(path string) (audio.Sample, error) {
	c, ok := p.controls[path]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownParam, path)
	}
	return *c.Zone, nil
}

// Set writes v, clamped to the control's range, to the control at path.
func (p *Params) Set(path string, v audio.Sample) error {
	c, ok := p.controls[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParam, path)
	}
	if c.Kind == Bargraph {
		return fmt.Errorf("%w: %s", ErrPassiveControl, path)
	}
	*c.Zone = min(max(v, c.Min), c.Max)
	return nil
}

// Reset restores every input control to its declared initial value.
func (p *Params) Reset() {
	for _, c := range p.controls {
		if c.Kind != Bargraph {
			*c.Zone = c.Init
		}
	}
}
