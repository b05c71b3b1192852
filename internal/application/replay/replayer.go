package replay

import (
	"encoding/json"
	"os"

	"github.com/younwookim/gamebox/internal/application/system"
	"github.com/younwookim/gamebox/internal/container"
)

// Replayer feeds recorded frames back as host input
type Replayer struct {
	data    ReplayData
	pending *container.Queue[FrameInput]
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	r := &Replayer{data: data}
	r.Reset()
	return r
}

// LoadReplay loads replay data from a file
func LoadReplay(path string) (*ReplayData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errIO("open", path, err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, errIO("decode", path, err)
	}
	if data.Version != FormatVersion {
		return nil, errVersion(path, data.Version)
	}
	return &data, nil
}

// Poll returns the next recorded snapshot. It reports false once every
// frame has been played.
func (r *Replayer) Poll() (system.Snapshot, bool) {
	fi, ok := r.pending.Dequeue()
	if !ok {
		return system.Snapshot{}, false
	}
	return fi.Snapshot(), true
}

// CurrentFrame returns the number of frames played so far
func (r *Replayer) CurrentFrame() int {
	return len(r.data.Frames) - r.pending.Len()
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// TPS returns the tick rate the replay was recorded at
func (r *Replayer) TPS() int {
	return r.data.TPS
}

// Reset rewinds the replayer to the first frame
func (r *Replayer) Reset() {
	r.pending = container.NewQueue(r.data.Frames...)
}
