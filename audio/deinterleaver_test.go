package audio

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestDeinterleaver_StereoScenario(t *testing.T) {
	t.Parallel()

	d, err := NewDeinterleaver(4, 2, 2)
	if err != nil {
		t.Fatalf("NewDeinterleaver() error = %v", err)
	}

	copy(d.Input(), []Sample{1, 2, 3, 4, 5, 6, 7, 8})
	d.Deinterleave()

	want := [][]Sample{{1, 3, 5, 7}, {2, 4, 6, 8}}
	for c, w := range want {
		if got := d.Outputs()[c]; !slices.Equal(got, w) {
			t.Errorf("Outputs()[%d] = %v, want %v", c, got, w)
		}
	}
}

func TestDeinterleaver_Allocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                    string
		frames, inputs, outputs int
		wantInput, wantOutputs  int
	}{
		{"symmetric", 8, 2, 2, 16, 2},
		{"more outputs", 8, 1, 4, 8, 4},
		{"more inputs", 8, 6, 2, 48, 6},
		{"zero frames", 0, 2, 2, 0, 2},
		{"zero channels", 16, 0, 0, 0, 0},
		{"beyond legacy cap", 2, 300, 300, 600, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := NewDeinterleaver(tt.frames, tt.inputs, tt.outputs)
			if err != nil {
				t.Fatalf("NewDeinterleaver() error = %v", err)
			}
			if len(d.Input()) != tt.wantInput {
				t.Errorf("len(Input()) = %d, want %d", len(d.Input()), tt.wantInput)
			}
			if len(d.Outputs()) != tt.wantOutputs || d.NumOutputs() != tt.wantOutputs {
				t.Errorf("len(Outputs()) = %d, want %d", len(d.Outputs()), tt.wantOutputs)
			}
			for c, out := range d.Outputs() {
				if len(out) != tt.frames || cap(out) != tt.frames {
					t.Errorf("Outputs()[%d] len=%d cap=%d, want %d", c, len(out), cap(out), tt.frames)
				}
			}

			// must not panic on empty shapes
			d.Deinterleave()
		})
	}
}

func TestDeinterleaver_Negative(t *testing.T) {
	t.Parallel()

	for _, args := range [][3]int{{-1, 2, 2}, {4, -1, 2}, {4, 2, -1}} {
		if _, err := NewDeinterleaver(args[0], args[1], args[2]); !errors.Is(err, ErrNegativeSize) {
			t.Errorf("NewDeinterleaver(%v) error = %v, want ErrNegativeSize", args, err)
		}
	}
}

func TestDeinterleaver_SizeOverflow(t *testing.T) {
	t.Parallel()

	huge := math.MaxInt/2 + 1
	for _, args := range [][3]int{{4, huge, 1}, {4, 1, huge}} {
		if _, err := NewDeinterleaver(args[0], args[1], args[2]); !errors.Is(err, ErrSizeOverflow) {
			t.Errorf("NewDeinterleaver(%v) error = %v, want ErrSizeOverflow", args, err)
		}
	}
}

func TestDeinterleaver_Idempotent(t *testing.T) {
	t.Parallel()

	d, _ := NewDeinterleaver(32, 3, 3)
	for i := range d.Input() {
		d.Input()[i] = Sample(i)
	}

	d.Deinterleave()
	first := make([][]Sample, d.NumOutputs())
	for c, out := range d.Outputs() {
		first[c] = slices.Clone(out)
	}

	d.Deinterleave()
	for c, out := range d.Outputs() {
		if !slices.Equal(out, first[c]) {
			t.Errorf("channel %d changed on second Deinterleave: %v vs %v", c, out, first[c])
		}
	}
}

func TestDeinterleaver_ExtraOutputsUntouched(t *testing.T) {
	t.Parallel()

	d, _ := NewDeinterleaver(4, 1, 3)
	copy(d.Input(), []Sample{1, 2, 3, 4})
	d.Outputs()[2][0] = 42

	d.Deinterleave()

	if !slices.Equal(d.Outputs()[0], []Sample{1, 2, 3, 4}) {
		t.Errorf("Outputs()[0] = %v", d.Outputs()[0])
	}
	if d.Outputs()[2][0] != 42 {
		t.Errorf("Outputs()[2][0] = %v, want 42 (not an input channel)", d.Outputs()[2][0])
	}
}

func TestDeinterleaver_ChannelsIsolated(t *testing.T) {
	t.Parallel()

	d, _ := NewDeinterleaver(2, 2, 2)
	_ = append(d.Outputs()[0], 99)

	if d.Outputs()[1][0] != 0 {
		t.Error("append on channel 0 overwrote channel 1")
	}
}

func BenchmarkDeinterleaver_Stereo512(b *testing.B) {
	d, _ := NewDeinterleaver(512, 2, 2)

	b.ReportAllocs()
	for b.Loop() {
		d.Deinterleave()
	}
}
