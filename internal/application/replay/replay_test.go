package replay

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gamebox/internal/application/event"
	"github.com/younwookim/gamebox/internal/application/system"
	"github.com/younwookim/gamebox/internal/errutil"
)

func sampleSnapshots() []system.Snapshot {
	return []system.Snapshot{
		{CursorX: 100, CursorY: 100, Focused: true},
		{Keys: []ebiten.Key{ebiten.KeyA}, Text: "a", CursorX: 110, CursorY: 95, Focused: true},
		{
			CursorX: 120, CursorY: 90,
			Buttons: event.ButtonMask(ebiten.MouseButtonLeft),
			WheelY:  -1,
			Focused: true,
			WindowX: 10, WindowY: 20,
		},
	}
}

func TestRecorder_RecordFrame(t *testing.T) {
	rec := NewRecorder(60)
	for _, s := range sampleSnapshots() {
		rec.RecordFrame(s)
	}

	assert.True(t, rec.IsRecording())
	assert.Equal(t, 3, rec.FrameCount())

	data := rec.Data()
	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, 60, data.TPS)
	assert.Equal(t, 2, data.Frames[2].F)

	rec.Stop()
	rec.RecordFrame(system.Snapshot{})
	assert.False(t, rec.IsRecording())
	assert.Equal(t, 3, rec.FrameCount(), "stopped recorder ignores frames")
}

func TestRecorder_SaveEmpty(t *testing.T) {
	err := NewRecorder(60).Save(filepath.Join(t.TempDir(), "empty.json"))
	errutil.AssertErrorCode(t, err, CodeEmptyReplay)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", GenerateFilename())

	rec := NewRecorder(30)
	for _, s := range sampleSnapshots() {
		rec.RecordFrame(s)
	}
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, 30, data.TPS)

	r := NewReplayer(*data)
	for i, want := range sampleSnapshots() {
		got, ok := r.Poll()
		require.True(t, ok, "frame %d", i)
		assert.Equal(t, want.Keys, got.Keys)
		assert.Equal(t, want.Text, got.Text)
		assert.Equal(t, want.CursorX, got.CursorX)
		assert.Equal(t, want.Buttons, got.Buttons)
		assert.Equal(t, want.WheelY, got.WheelY)
		assert.Equal(t, want.Focused, got.Focused)
		assert.Equal(t, want.WindowY, got.WindowY)
	}
}

func TestReplayer_Poll(t *testing.T) {
	data := ReplayData{
		Version: FormatVersion,
		Frames:  []FrameInput{{F: 0, MX: 1}, {F: 1, MX: 2}},
	}
	r := NewReplayer(data)
	assert.Equal(t, 2, r.TotalFrames())
	assert.Zero(t, r.TPS(), "tps left unset")

	s, ok := r.Poll()
	require.True(t, ok)
	assert.Equal(t, 1, s.CursorX)
	assert.Equal(t, 1, r.CurrentFrame())

	_, ok = r.Poll()
	require.True(t, ok)

	_, ok = r.Poll()
	assert.False(t, ok, "exhausted replay reports end of input")
	assert.Equal(t, 2, r.CurrentFrame())

	r.Reset()
	assert.Equal(t, 0, r.CurrentFrame())
	s, ok = r.Poll()
	require.True(t, ok)
	assert.Equal(t, 1, s.CursorX)
}

func TestFrameInput_SnapshotSortsKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edited.json")
	body := fmt.Sprintf(`{"version":"2.0","tps":30,"frames":[{"f":0,"k":[%d,%d,%d]}]}`,
		ebiten.KeyS, ebiten.KeyA, ebiten.KeyW)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	r := NewReplayer(*data)
	assert.Equal(t, 30, r.TPS())

	s, ok := r.Poll()
	require.True(t, ok)
	for _, k := range []ebiten.Key{ebiten.KeyA, ebiten.KeyS, ebiten.KeyW} {
		assert.True(t, s.IsKeyPressed(k), "key %v held", k)
	}
	assert.False(t, s.IsKeyPressed(ebiten.KeyD))
	assert.Equal(t, []ebiten.Key{ebiten.KeyS, ebiten.KeyA, ebiten.KeyW}, data.Frames[0].K, "frame data untouched")
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.json"))
	errutil.AssertErrorCode(t, err, CodeReplayIO)

	garbage := filepath.Join(dir, "garbage.json")
	require.NoError(t, os.WriteFile(garbage, []byte("{"), 0o600))
	_, err = LoadReplay(garbage)
	errutil.AssertErrorCode(t, err, CodeReplayIO)

	old := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(old, []byte(`{"version":"1.0","frames":[]}`), 0o600))
	_, err = LoadReplay(old)
	errutil.AssertErrorCode(t, err, CodeUnsupportedVersion)
	errutil.AssertErrorContext(t, err, "version", "1.0")
}
