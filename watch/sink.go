package watch

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Sink receives one log line per traced access.
type Sink interface {
	Emit(line string)
}

// WriterSink returns a sink that writes each line to w, newline
// terminated. Writes are synchronous and unbuffered.
func WriterSink(w io.Writer) Sink {
	return writerSink{w: w}
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) Emit(line string) {
	fmt.Fprintln(s.w, line)
}

// ZapSink returns a sink that emits each line through a zap logger at
// info level.
func ZapSink(l *zap.Logger) Sink {
	return zapSink{l: l}
}

type zapSink struct {
	l *zap.Logger
}

func (s zapSink) Emit(line string) {
	s.l.Info(line)
}
