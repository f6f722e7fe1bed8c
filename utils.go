package main

import (
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/marisvali/blockfall/world"
)

var CheckCrashes = true
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}

func LoadYAML(fsys FS, filename string, v any) {
	data, err := fsys.ReadFile(filename)
	Check(err)
	err = yaml.Unmarshal(data, v)
	Check(err)
}

func ReadFile(name string) []byte {
	data, err := os.ReadFile(name)
	Check(err)
	return data
}

func FileExists(fsys FS, name string) bool {
	file, err := fsys.Open(name)
	if err == nil {
		Check(file.Close())
		return true
	} else {
		return false
	}
}

func LoadPlaythrough(name string) world.Playthrough {
	p, err := world.DeserializePlaythrough(ReadFile(name))
	Check(err)
	return p
}

func NewWorldFromPlaythrough(p world.Playthrough) *world.World {
	w, err := world.NewWorldFromPlaythrough(p)
	Check(err)
	return w
}

// FolderWatcher tells if any file in a folder was modified since the last
// time it was asked.
type FolderWatcher struct {
	Folder string
	times  []time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	files, err := os.ReadDir(f.Folder)
	Check(err)
	if len(files) != len(f.times) {
		f.times = make([]time.Time, len(files))
	}
	changed := false
	for idx, file := range files {
		info, err := file.Info()
		Check(err)
		if f.times[idx] != info.ModTime() {
			changed = true
			f.times[idx] = info.ModTime()
		}
	}
	return changed
}

// HandlePanic saves the playthrough next to the executable before letting
// a panic continue. Starting the game with StartState: DebugCrash and this
// file replays everything up to the crash.
func (g *Gui) HandlePanic() {
	r := recover()
	if r == nil {
		return
	}
	if g.state == PlayScreen || g.state == PausedScreen {
		name := "crash.bfp"
		WriteFile(name, g.playthrough.Serialize())
		g.log.Error("crashed", "error", r, "playthrough", name,
			"frames", len(g.playthrough.History))
	}
	panic(r)
}
