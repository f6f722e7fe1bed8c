package world

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is the part of the World that is visible from the outside,
// as bytes. Two Worlds with the same StateBytes are considered the same,
// however they are implemented internally.
func (w *World) StateBytes() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, int64(w.State))
	Serialize(buf, int64(w.Field.Width()))
	Serialize(buf, int64(w.Field.Height()))
	for _, row := range w.Field.Rows() {
		for _, v := range row {
			Serialize(buf, int8(v))
		}
	}
	Serialize(buf, int64(w.Active.Type))
	Serialize(buf, int64(w.Active.Pos.X))
	Serialize(buf, int64(w.Active.Pos.Y))
	for _, row := range w.Active.Shape.Rows() {
		for _, v := range row {
			Serialize(buf, int8(v))
		}
	}
	Serialize(buf, int64(w.Next.Type))
	Serialize(buf, int64(w.Score))
	Serialize(buf, int64(w.Lines))
	Serialize(buf, int64(w.Level))
	Serialize(buf, w.DropIntervalMs)
	Serialize(buf, int64(w.FinalScore))
	return buf.Bytes()
}

// RegressionId runs a playthrough from the start and hashes the state of
// the World after every input. If a refactoring of World leaves the
// RegressionId of a long, varied playthrough unchanged, the refactoring did
// not change the game.
func RegressionId(p *Playthrough) (string, error) {
	w, err := NewWorldFromPlaythrough(*p)
	if err != nil {
		return "", err
	}

	hash := sha256.New()
	hash.Write(w.StateBytes())
	for i := range p.History {
		w.Step(p.History[i])
		hash.Write(w.StateBytes())
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
