package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/session"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Report struct {
	Config Config

	// Results
	TotalFrames int64
	TotalTime   time.Duration
	FrameTime   session.PhaseStats
	Games       []GameResult
	Locks       int64
	Rows        int64
	Shapes      []Count
	Clears      []Count
	Phases      []session.PhaseStats

	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// GameResult is the final state of one finished or interrupted game.
type GameResult struct {
	Score    int
	Rows     int
	Level    int
	Locks    int
	Finished bool
}

type Count struct {
	Label string
	Value int64
}

// BestScore returns the highest game score.
func (r *Report) BestScore() int {
	best := 0
	for _, g := range r.Games {
		best = max(best, g.Score)
	}
	return best
}

// AvgScore returns the mean score over finished games.
func (r *Report) AvgScore() float64 {
	var total, n int
	for _, g := range r.Games {
		if g.Finished {
			total += g.Score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}

// MaxLevel returns the highest level reached in any game.
func (r *Report) MaxLevel() int {
	level := 0
	for _, g := range r.Games {
		level = max(level, g.Level)
	}
	return level
}

// FinishedGames counts games that ended by topping out.
func (r *Report) FinishedGames() int {
	n := 0
	for _, g := range r.Games {
		if g.Finished {
			n++
		}
	}
	return n
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Stress Test Report

## Test Configuration
- **Run Duration:** {{.Config.Duration}}
- **Seed:** {{.Config.Seed}}
- **Simulated Frame:** {{.Config.Frame}}
- **Action Rate:** {{printf "%.2f" .Config.ActionRate}}
- **Board:** {{.Config.Width}}x{{.Config.Height}}

## Games
- **Games Played:** {{num (len .Games)}} ({{num .FinishedGames}} finished)
- **Best Score:** {{num .BestScore}}
- **Average Score:** {{dec .AvgScore}}
- **Highest Level:** {{.MaxLevel}}
- **Pieces Locked:** {{num .Locks}}
- **Rows Cleared:** {{num .Rows}}

## Locked Shapes
{{range .Shapes}}- {{.Label}}: {{num .Value}}
{{end}}
## Clears Per Lock
{{range .Clears}}- {{.Label}}: {{num .Value}}
{{end}}
## Performance Results
- **Total Frames:** {{num .TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}
{{range .Phases}}- **Phase {{.Name}}:** avg {{.Avg}}, min {{.Min}}, max {{.Max}} over {{num .Count}} frames
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{num .MemStatsStart.HeapAlloc}} (start) -> {{num .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc:    {{num .MemStatsStart.TotalAlloc}} (start) -> {{num .MemStatsEnd.TotalAlloc}} (end)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end)
`

	printer := message.NewPrinter(language.English)
	fm := template.FuncMap{
		"num": func(v any) string {
			return printer.Sprintf("%d", v)
		},
		"dec": func(v float64) string {
			return printer.Sprintf("%.1f", v)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
