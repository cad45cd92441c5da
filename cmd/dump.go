package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/theoparis/luau/internal/log"
	"github.com/theoparis/luau/txn"
	"github.com/theoparis/luau/types"
	"log/slog"
)

var DumpCmd = &cobra.Command{
	Use:          "dump",
	Short:        "Build a demo type graph, speculate on it, and dump each stage",
	RunE:         runDump,
	SilenceUsage: true,
}

var dumpLogLevel *int

func init() {
	dumpLogLevel = DumpCmd.Flags().IntP("log-level", "l", int(slog.LevelInfo), "log level")
}

func runDump(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*dumpLogLevel))

	arena := &types.Arena{}
	builtins := types.Builtins()

	// a cyclic record: node = { value: number, next: node }
	node := arena.AddType(&types.TableType{
		Props: map[string]types.TypeId{},
		State: types.TableUnsealed,
	})
	tbl := types.GetMutable[types.TableType](node)
	tbl.Props["value"] = builtins.NumberType
	tbl.Props["next"] = node

	free := arena.FreshType(types.TypeLevel{Level: 1})

	fmt.Println("committed graph:")
	fmt.Print(types.Dump(node))
	fmt.Printf("unsolved variable: %s\n\n", types.ToString(free))

	// speculate in a child log: solve the variable and give the table
	// a string indexer, without touching the committed graph
	root := txn.NewLog()
	child := txn.NewChildLog(root)
	child.Replace(free, &types.BoundType{BoundTo: node})
	child.ChangeIndexer(node, &types.TableIndexer{
		IndexType:       builtins.StringType,
		IndexResultType: builtins.AnyType,
	})

	fmt.Println("pending in child log:")
	for ty, p := range child.Changes() {
		fmt.Printf("  t%d -> %s\n", ty.ID(), p)
	}
	fmt.Printf("variable through child log: %s\n", types.ToString(child.Follow(free)))
	fmt.Printf("variable committed:         %s\n\n", types.ToString(types.Follow(free)))

	root.Concat(child)
	root.Commit()

	fmt.Println("after commit:")
	fmt.Print(types.Dump(node))
	fmt.Printf("variable now: %s\n", types.ToString(types.Follow(free)))
	return nil
}
