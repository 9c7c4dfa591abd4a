package dsp

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/audbridge/audio"
)

// mixer declares the same nested layout as a small mixing desk.
type mixer struct {
	level, play, meter audio.Sample
}

func (m *mixer) build(ui UI) {
	ui.OpenVerticalBox("Mixer")
	ui.OpenVerticalBox("Channel 3")
	ui.Declare(&m.level, "style", "knob")
	ui.AddHorizontalSlider("Level", &m.level, 0, 0, 1, 0.01)
	ui.AddButton("play", &m.play)
	ui.CloseBox()
	ui.AddVerticalBargraph("meter", &m.meter, -60, 0)
	ui.CloseBox()
}

func TestParams_Paths(t *testing.T) {
	t.Parallel()

	p := NewParams()
	(&mixer{}).build(p)

	want := []string{"/Mixer/Channel 3/Level", "/Mixer/Channel 3/play", "/Mixer/meter"}
	if got := p.Paths(); !slices.Equal(got, want) {
		t.Errorf("Paths() = %q, want %q", got, want)
	}
}

func TestParams_SetGet(t *testing.T) {
	t.Parallel()

	m := &mixer{level: 0.5}
	p := NewParams()
	m.build(p)

	tests := []struct {
		name string
		path string
		set  audio.Sample
		want audio.Sample
		err  error
	}{
		{"in range", "/Mixer/Channel 3/Level", 0.25, 0.25, nil},
		{"clamped high", "/Mixer/Channel 3/Level", 3, 1, nil},
		{"clamped low", "/Mixer/Channel 3/Level", -1, 0, nil},
		{"button", "/Mixer/Channel 3/play", 1, 1, nil},
		{"unknown", "/Mixer/Nope", 1, 0, ErrUnknownParam},
		{"bargraph", "/Mixer/meter", 1, 0, ErrPassiveControl},
	}

	for _, tt := range tests {
		err := p.Set(tt.path, tt.set)
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: Set() error = %v, want %v", tt.name, err, tt.err)
			continue
		}
		if tt.err != nil {
			continue
		}
		got, err := p.Get(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("%s: Get() = %v, %v, want %v", tt.name, got, err, tt.want)
		}
	}

	if m.level != 0 {
		t.Errorf("zone not written through: level = %v, want 0", m.level)
	}
	if _, err := p.Get("/missing"); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("Get() error = %v, want ErrUnknownParam", err)
	}
}

func TestParams_ControlAndMeta(t *testing.T) {
	t.Parallel()

	p := NewParams()
	(&mixer{}).build(p)

	c, ok := p.Control("/Mixer/Channel 3/Level")
	if !ok {
		t.Fatal("Control() not found")
	}
	if c.Kind != Slider || c.Min != 0 || c.Max != 1 || c.Step != 0.01 {
		t.Errorf("Control() = %+v", c)
	}
	if c.Meta["style"] != "knob" {
		t.Errorf("Meta = %v, want style=knob", c.Meta)
	}
	if c.Kind.String() != "slider" {
		t.Errorf("Kind.String() = %q", c.Kind.String())
	}

	if b, _ := p.Control("/Mixer/Channel 3/play"); b.Meta != nil {
		t.Errorf("button picked up metadata %v", b.Meta)
	}
	if _, ok := p.Control("/nope"); ok {
		t.Error("Control() found an undeclared path")
	}
}

func TestParams_Reset(t *testing.T) {
	t.Parallel()

	m := &mixer{level: 0.9, play: 1, meter: -3}
	p := NewParams()
	m.build(p)
	p.Reset()

	if m.level != 0 || m.play != 0 {
		t.Errorf("after Reset level=%v play=%v, want 0 0", m.level, m.play)
	}
	if m.meter != -3 {
		t.Errorf("Reset touched bargraph: %v", m.meter)
	}
}

func TestParams_UnbalancedCloseBox(t *testing.T) {
	t.Parallel()

	var z audio.Sample
	p := NewParams()
	p.CloseBox()
	p.AddNumEntry("n", &z, 0, 0, 10, 1)

	if got := p.Paths(); !slices.Equal(got, []string{"/n"}) {
		t.Errorf("Paths() = %q", got)
	}
}
