// Package cmd implements the zl2dali command line application.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"os"

	"github.com/etnz/zenledger"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands lists the subcommands of the application.
var Commands = []subcommands.Command{
	&convertCmd{},
	&typesCmd{},
	&topicCmd{},
}

// Environment variables holding the defaults of the global flags. They are
// also set for extensions.
const (
	EnvFiat      = "ZL2DALI_FIAT"
	EnvHolder    = "ZL2DALI_HOLDER"
	EnvTransfers = "ZL2DALI_TRANSFERS"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	fiat      = flag.String("fiat", "", "reference fiat currency (default $"+EnvFiat+" or USD)")
	holder    = flag.String("holder", "", "holder written on every entry (default $"+EnvHolder+" or unknown)")
	transfers = flag.String("transfers", "", "reading of Send and Receive records: disposal or intra (default $"+EnvTransfers+" or disposal)")
)

// LoadEnv loads the environment defaults from a .env file in the current
// directory, if any. Variables already set are left untouched.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// setting returns the flag value if set, the environment value if set, 'def' otherwise.
func setting(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// globalConfig returns the conversion configuration resolved from the global flags.
func globalConfig() (zenledger.Config, error) {
	cfg := zenledger.DefaultConfig()
	cfg.Fiat = setting(*fiat, EnvFiat, cfg.Fiat)
	cfg.Holder = setting(*holder, EnvHolder, cfg.Holder)
	policy, err := zenledger.ParseTransferPolicy(setting(*transfers, EnvTransfers, cfg.Transfers.String()))
	if err != nil {
		return cfg, err
	}
	cfg.Transfers = policy
	return cfg, cfg.Validate()
}
