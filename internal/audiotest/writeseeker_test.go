package audiotest

import (
	"io"
	"testing"
)

func TestWriteSeeker_PatchInPlace(t *testing.T) {
	t.Parallel()

	var w WriteSeeker
	_, _ = w.Write([]byte("RIFF----WAVE"))
	if _, err := w.Seek(4, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	_, _ = w.Write([]byte("1234"))

	if got := string(w.Bytes()); got != "RIFF1234WAVE" {
		t.Errorf("Bytes() = %q, want %q", got, "RIFF1234WAVE")
	}

	if _, err := w.Seek(-1, io.SeekStart); err == nil {
		t.Error("Seek(-1) error = nil, want error")
	}
}
