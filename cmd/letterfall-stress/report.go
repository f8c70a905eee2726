package main

import (
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Width     int
	Height    int
	Threshold int
	Letters   int
	Seed      uint64

	// Results
	TotalDrops      int64
	FullColumnDrops int64
	ClearingDrops   int64
	CascadeDrops    int64
	BoardResets     int64
	TotalDestroyed  int64
	TotalScore      int64
	MaxDepth        int
	TotalTime       time.Duration
	DropTime        Stats
	MemStatsStart   runtime.MemStats
	MemStatsEnd     runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Letterfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Board:** {{.Width}}x{{.Height}}, match threshold {{.Threshold}}, {{.Letters}} letters
- **Seed:** {{.Seed}}

## Gameplay Results
- **Total Drops:** {{.TotalDrops}}
- **Full-Column Drops:** {{.FullColumnDrops}}
- **Board Resets:** {{.BoardResets}}
- **Drops That Cleared:** {{.ClearingDrops}}
- **Drops That Cascaded:** {{.CascadeDrops}}
- **Cells Destroyed:** {{.TotalDestroyed}}
- **Score Accumulated:** {{.TotalScore}}
- **Deepest Cascade:** {{.MaxDepth}}

## Performance Results
- **Total Test Time:** {{.TotalTime}}
- **Drop Time (Place + Resolve):**
  - **Avg:** {{.DropTime.Avg}}
  - **Min:** {{.DropTime.Min}}
  - **Max:** {{.DropTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
