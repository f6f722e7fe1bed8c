// Command replay runs recorded playthroughs and prints what happened in
// them, including their regression id.
//
//	replay [-frame N] file.bfp...
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/marisvali/blockfall/world"
)

// Summary is what a playthrough amounts to once it was run.
type Summary struct {
	Id                string
	Seed              int64
	SimulationVersion int64
	Frames            int
	DurationMs        int64
	Score             int
	Lines             int
	Level             int
	GamesOver         int
	BestFinalScore    int
	RegressionId      string
}

// Summarize runs p from start to end. If frame is between 0 and the number
// of frames, the field as it was after that many steps is returned too.
func Summarize(p *world.Playthrough, frame int) (s Summary, field string, err error) {
	w, err := world.NewWorldFromPlaythrough(*p)
	if err != nil {
		return s, "", err
	}
	if frame == 0 {
		field = FieldASCII(w)
	}
	for i, input := range p.History {
		w.Step(input)
		if w.JustGameOver {
			s.GamesOver++
			s.BestFinalScore = max(s.BestFinalScore, w.FinalScore)
		}
		if i+1 == frame {
			field = FieldASCII(w)
		}
	}

	s.Id = p.Id.String()
	s.Seed = p.Seed
	s.SimulationVersion = p.SimulationVersion
	s.Frames = len(p.History)
	if len(p.History) > 0 {
		s.DurationMs = p.History[len(p.History)-1].TimeMs - p.History[0].TimeMs
	}
	s.Score = w.Score
	s.Lines = w.Lines
	s.Level = w.Level
	s.RegressionId, err = world.RegressionId(p)
	return
}

// FieldASCII draws the field with the active piece in it, one letter per
// piece type and '.' for empty cells.
func FieldASCII(w *world.World) string {
	s := w.Snapshot()
	var b strings.Builder
	var pt world.Pt
	for pt.Y = 0; pt.Y < len(s.Field); pt.Y++ {
		for pt.X = 0; pt.X < len(s.Field[pt.Y]); pt.X++ {
			if v := s.Cell(pt); v != 0 {
				b.WriteString(world.PieceType(v).String())
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func PrintSummary(out io.Writer, name string, s *Summary) {
	fmt.Fprintf(out, "%s\n", name)
	fmt.Fprintf(out, "  id:            %s\n", s.Id)
	fmt.Fprintf(out, "  seed:          %d\n", s.Seed)
	fmt.Fprintf(out, "  simulation:    v%d\n", s.SimulationVersion)
	fmt.Fprintf(out, "  frames:        %d (%.1fs)\n", s.Frames,
		float64(s.DurationMs)/1000)
	fmt.Fprintf(out, "  games over:    %d (best final score %d)\n",
		s.GamesOver, s.BestFinalScore)
	fmt.Fprintf(out, "  at the end:    score %d, lines %d, level %d\n",
		s.Score, s.Lines, s.Level)
	fmt.Fprintf(out, "  regression id: %s\n", s.RegressionId)
}

func main() {
	frame := flag.Int("frame", -1, "also print the field after this many frames")
	flag.Parse()
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: replay [-frame N] file.bfp...")
		os.Exit(2)
	}

	failed := false
	for _, name := range flag.Args() {
		data, err := os.ReadFile(name)
		if err != nil {
			log.Error("reading playthrough", "file", name, "error", err)
			failed = true
			continue
		}
		p, err := world.DeserializePlaythrough(data)
		if err != nil {
			log.Error("decoding playthrough", "file", name, "error", err)
			failed = true
			continue
		}
		s, field, err := Summarize(&p, *frame)
		if err != nil {
			log.Error("running playthrough", "file", name, "error", err)
			failed = true
			continue
		}
		PrintSummary(os.Stdout, name, &s)
		if field != "" {
			fmt.Printf("  field after frame %d:\n%s", *frame, field)
		}
	}
	if failed {
		os.Exit(1)
	}
}
