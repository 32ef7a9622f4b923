// Package xlog wires up the process-wide zerolog logger used for engine
// lifecycle and search-diagnostic records. It is not the UCI-like wire
// protocol (that stays on stdout via fmt.Printf, per §6) — this is the
// ambient structured-logging concern a complete Go repo carries even
// though the spec's hard core is silent on it.
package xlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger to write human-readable
// records to w (stderr when w is nil) at the given level, keeping stdout
// free for the diagnostic protocol lines the embedder parses.
func Init(level zerolog.Level, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	log.Logger = zerolog.New(console).With().Timestamp().Logger().Level(level)
}
