package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gamebox/internal/application/system"
)

func replaySnapshot(keys []ebiten.Key) system.Snapshot {
	return system.Snapshot{Keys: keys, Focused: true}
}

type frameCounter struct{ names *[]string }

func (f frameCounter) RecordFrame(s system.Snapshot) {
	*f.names = append(*f.names, "frame")
}

func frameNames(out *[]string) frameCounter {
	return frameCounter{names: out}
}
