package main

import "github.com/marisvali/blockfall/world"

// FlashFrames is how long the line clear flash stays on screen.
const FlashFrames = 30

// Flash is a visual effect that appears, fades out and goes away. It
// doesn't represent anything in the World.
type Flash struct {
	Caption     string
	NFrames     int64
	NFramesLeft int64
}

// Alpha goes from 1 when the flash appears to 0 when it is gone.
func (f *Flash) Alpha() float64 {
	return float64(f.NFramesLeft) / float64(f.NFrames)
}

// VisWorld is a world parallel to World that holds "visual logic": the data
// of ongoing effects. Draw() relies on it just like it relies on World.
//
// VisWorld is stepped right after World, every time World is stepped.
type VisWorld struct {
	Flashes []*Flash
}

func (v *VisWorld) Step(w *world.World) {
	// Step existing flashes.
	for _, f := range v.Flashes {
		f.NFramesLeft--
	}

	// Filter out obsolete flashes.
	n := 0
	for i := range v.Flashes {
		if v.Flashes[i].NFramesLeft > 0 {
			v.Flashes[n] = v.Flashes[i]
			n++
		}
	}
	v.Flashes = v.Flashes[:n]

	// Create new flashes if necessary.
	if w.JustCleared > 0 {
		delta := world.LinesScore(w.JustCleared, w.Config.LineClearBase)
		v.Flashes = append(v.Flashes, &Flash{
			Caption:     world.ClearCaption(w.JustCleared, delta),
			NFrames:     FlashFrames,
			NFramesLeft: FlashFrames,
		})
	}
}

// Current is the most recent flash, nil if none is on.
func (v *VisWorld) Current() *Flash {
	if len(v.Flashes) == 0 {
		return nil
	}
	return v.Flashes[len(v.Flashes)-1]
}
