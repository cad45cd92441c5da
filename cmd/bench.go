package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/theoparis/luau/internal/log"
	"github.com/theoparis/luau/txn"
	"github.com/theoparis/luau/types"
	"log/slog"
	"time"
)

var BenchCmd = &cobra.Command{
	Use:          "bench",
	Short:        "Measure log edit/commit/rollback throughput on a synthetic graph",
	RunE:         runBench,
	SilenceUsage: true,
}

var (
	benchNodes    *int
	benchRounds   *int
	benchLogLevel *int
)

func init() {
	benchNodes = BenchCmd.Flags().IntP("nodes", "n", 10_000, "free type nodes in the graph")
	benchRounds = BenchCmd.Flags().IntP("rounds", "r", 100, "speculation rounds to run")
	benchLogLevel = BenchCmd.Flags().IntP("log-level", "l", int(slog.LevelWarn), "log level")
}

var benchLogger = log.DefaultLogger.With("section", "bench")

func runBench(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*benchLogLevel))

	nodes, rounds := *benchNodes, *benchRounds
	if nodes <= 0 || rounds <= 0 {
		return fmt.Errorf("need positive node and round counts, got %d and %d", nodes, rounds)
	}

	arena := &types.Arena{}
	number := types.Builtins().NumberType
	frees := make([]types.TypeId, nodes)
	for i := range frees {
		frees[i] = arena.FreshType(types.TypeLevel{Level: 1})
	}

	// Even rounds abandon their edits, odd rounds commit and then undo
	// through the inverse, so every round starts from the same graph.
	var editTime, clearTime, commitTime, undoTime time.Duration
	start := time.Now()
	for round := 0; round < rounds; round++ {
		l := txn.NewLog()

		t0 := time.Now()
		for _, ty := range frees {
			l.Replace(ty, &types.BoundType{BoundTo: number})
		}
		editTime += time.Since(t0)

		if round%2 == 0 {
			t0 = time.Now()
			l.Clear()
			clearTime += time.Since(t0)
			continue
		}

		inverse := l.Inverse()
		t0 = time.Now()
		l.Commit()
		commitTime += time.Since(t0)

		t0 = time.Now()
		inverse.Commit()
		undoTime += time.Since(t0)
	}
	total := time.Since(start)

	edits := nodes * rounds
	fmt.Printf("%d nodes, %d rounds (%d edits) in %s\n", nodes, rounds, edits, total.Round(time.Millisecond))
	fmt.Printf("  queue+replace: %s (%s per edit)\n", editTime.Round(time.Millisecond), editTime/time.Duration(edits))
	fmt.Printf("  clear:         %s\n", clearTime.Round(time.Millisecond))
	fmt.Printf("  commit:        %s\n", commitTime.Round(time.Millisecond))
	fmt.Printf("  undo:          %s\n", undoTime.Round(time.Millisecond))

	benchLogger.Debug("bench finished", "nodes", nodes, "rounds", rounds)
	return nil
}
