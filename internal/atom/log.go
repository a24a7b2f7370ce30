package atom

import (
	"io"
	"log"
	"strings"
)

// LogObserver writes one INFO line per iteration and a WARNING when the
// change grows between passes.
type LogObserver struct {
	Info    *log.Logger
	Warning *log.Logger

	last float64
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{
		Info:    log.New(w, "INFO: ", log.Ldate|log.Ltime),
		Warning: log.New(w, "WARNING: ", log.Ldate|log.Ltime),
	}
}

func (l *LogObserver) OnIteration(it Iteration) {
	var b strings.Builder
	for i, lv := range it.Levels {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(lv.String())
	}
	l.Info.Printf("iteration %d: ΔV=%.3e tail=%d levels=[%s]", it.Number, it.MaxDelta, it.TailStart, b.String())
	if it.Number > 1 && it.MaxDelta > l.last {
		l.Warning.Printf("iteration %d: ΔV rose from %.3e to %.3e", it.Number, l.last, it.MaxDelta)
	}
	l.last = it.MaxDelta
}
