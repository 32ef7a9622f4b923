// Command giveaway is a minimal demonstration harness over the engine
// package: it is deliberately not a full UCI implementation, since the
// outer I/O loop is an external collaborator this repo's hard core does
// not own (spec §1). It exists so the External Interfaces (§6) have
// something driving them end to end from a terminal.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	bd "github.com/kestog/giveaway-engine/board"
	"github.com/kestog/giveaway-engine/engine"
	"github.com/kestog/giveaway-engine/internal/xlog"
)

func main() {
	xlog.Init(zerolog.InfoLevel, os.Stderr)

	eng, err := engine.NewEngine(engine.EngineOptions{TTSizeMB: 64})
	if err != nil {
		fmt.Fprintln(os.Stderr, "init_engine failed:", err)
		os.Exit(1)
	}

	current := bd.Initial()
	side := bd.White

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "newgame":
			current = bd.Initial()
			side = bd.White

		case "go":
			depth, timeMS := parseGoArgs(fields[1:])
			result := eng.FindBestMove(current, side, depth, timeMS)
			fmt.Printf("bestmove %d%d\n", result.Best.FromSquare(), result.Best.ToSquare())
			current = eng.ApplyMove(current, result.Best, side)
			side = side.Opponent()

		case "moves":
			for _, m := range eng.GenerateLegalMoves(current, side) {
				fmt.Printf("%d%d\n", m.FromSquare(), m.ToSquare())
			}

		case "hash":
			fmt.Println(engine.CalculateHash(current))

		case "quit":
			return

		default:
			fmt.Fprintln(os.Stderr, "unknown command:", fields[0])
		}
	}
}

func parseGoArgs(args []string) (depth int, timeMS int64) {
	depth = 10
	timeMS = 1000
	for i := 0; i+1 < len(args); i += 2 {
		switch args[i] {
		case "depth":
			if v, err := strconv.Atoi(args[i+1]); err == nil {
				depth = v
			}
		case "movetime":
			if v, err := strconv.ParseInt(args[i+1], 10, 64); err == nil {
				timeMS = v
			}
		}
	}
	return
}
