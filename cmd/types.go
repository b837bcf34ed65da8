package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/zenledger/renderer"
	"github.com/google/subcommands"
)

type typesCmd struct{}

func (*typesCmd) Name() string     { return "types" }
func (*typesCmd) Synopsis() string { return "list the recognized transaction types" }
func (*typesCmd) Usage() string {
	return `zl2dali [-fiat <code>] [-transfers disposal|intra] types

List the transaction types recognized in exports, and the entries they are converted to.
`
}

func (*typesCmd) SetFlags(f *flag.FlagSet) {}

func (*typesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := globalConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.RenderTypes(renderer.NewTypes(cfg)))
	return subcommands.ExitSuccess
}
