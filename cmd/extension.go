package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
)

// ExtensionPrefix prefixes the name of external subcommands.
const ExtensionPrefix = "zl2dali-"

// RunExtension attempts to find and execute an external zl2dali-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The resolved global flags are passed to the extension as ZL2DALI_* environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvFiat+"="+setting(*fiat, EnvFiat, "USD"),
		EnvHolder+"="+setting(*holder, EnvHolder, "unknown"),
		EnvTransfers+"="+setting(*transfers, EnvTransfers, "disposal"),
	)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
