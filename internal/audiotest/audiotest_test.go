// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestSeekBuffer(t *testing.T) {
	t.Parallel()

	var b SeekBuffer
	if _, err := b.Write([]byte("RIFF....WAVE")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := b.Seek(4, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	if _, err := b.Write([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if pos, _ := b.Seek(0, io.SeekEnd); pos != 12 {
		t.Errorf("Seek(0, io.SeekEnd) = %d, want 12", pos)
	}

	want := []byte("RIFF\x01\x02\x03\x04WAVE")
	if !bytes.Equal(b.Bytes(), want) {
		t.Errorf("Bytes() = %q, want %q", b.Bytes(), want)
	}
	if _, err := b.Seek(-1, io.SeekStart); err == nil {
		t.Error("Seek() to a negative position succeeded")
	}
}

func TestMockSource_WithError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := NewLevelSource(22050, []uint8{0, 128, 255}).WithError(boom)

	buf := make([]float32, 8)
	n, err := src.ReadSamples(buf)
	if n != 3 || !errors.Is(err, boom) {
		t.Fatalf("ReadSamples() = %d, %v, want 3, boom", n, err)
	}
	if buf[0] != -1 || buf[1] != 0 {
		t.Errorf("levels = %v, want [-1 0 ...]", buf[:3])
	}
	if err := src.Close(); err != nil || !src.Closed() {
		t.Errorf("Close() = %v, Closed() = %v", err, src.Closed())
	}
}

func TestMockSource_Interleaved(t *testing.T) {
	t.Parallel()

	src := NewMockSource(22050, 2, 3, func(sample, channel int) float32 {
		return float32(sample) + float32(channel)/2
	})

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	// Only whole frames fit: two stereo frames out of room for five values.
	want := []float32{0, 0.5, 1, 1.5}
	if n != len(want) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(want))
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	n, err = src.ReadSamples(dst)
	if n != 2 || err != io.EOF {
		t.Errorf("last ReadSamples() = %d, %v, want 2, io.EOF", n, err)
	}
	if dst[0] != 2 || dst[1] != 2.5 {
		t.Errorf("last frame = %v, want [2 2.5]", dst[:2])
	}

	if err := src.Close(); err != nil || !src.Closed() {
		t.Errorf("Close() = %v, Closed() = %v, want nil, true", err, src.Closed())
	}
}
