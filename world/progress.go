package world

// Progress is the score, level and speed part of the game state.
type Progress struct {
	Score          int
	Lines          int
	Level          int
	DropIntervalMs int64
}

func NewProgress(c *Config) Progress {
	return Progress{DropIntervalMs: c.InitialDropIntervalMs()}
}

// AddLines accounts for count rows cleared in one pass and returns the score
// gained. Level-ups are checked after every single row, so a pass that
// crosses a multiple of LinesPerLevel levels up exactly once for it.
func (p *Progress) AddLines(count int, c *Config) (delta int) {
	for n := 1; n <= count; n++ {
		delta += LineWeight(n, c.LineClearBase)
		p.Lines++
		if p.Lines%c.LinesPerLevel == 0 && p.Level < c.MaxLevel {
			p.Level++
			p.DropIntervalMs = max(p.DropIntervalMs-c.IntervalStepMs,
				c.MinDropIntervalMs)
		}
	}
	p.Score += delta
	return
}

// AddHardDrop awards the hard drop bonus for a piece that fell rowsDropped
// rows. Drops of a single row or less earn nothing.
func (p *Progress) AddHardDrop(rowsDropped int, c *Config) (delta int) {
	if rowsDropped <= 1 {
		return 0
	}
	delta = rowsDropped + c.HardDropBonus
	p.Score += delta
	return
}

func (p *Progress) Reset(c *Config) {
	*p = NewProgress(c)
}
