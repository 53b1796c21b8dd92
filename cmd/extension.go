package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// RunExtension attempts to find and execute an external ft-<subcommand>
// binary. It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// Extensions receive the resolved configuration through the FT_* environment
// variables, so they read and write the same snapshot as the builtin verbs.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "ft-" + subcommand

	path, err := exec.LookPath(name)
	if err != nil {
		if *Verbose {
			log.Printf("external command %q not found in PATH: %v", name, err)
		}
		return false, 0
	}

	cfg, err := appConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return true, 1
	}

	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvStorage+"="+cfg.Storage,
		EnvHistory+"="+cfg.History,
		EnvCurrency+"="+cfg.Currency,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if code := exitErr.ExitCode(); code >= 0 {
				return true, code
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
