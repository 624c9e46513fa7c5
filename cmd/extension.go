package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

const (
	EnvPadding  = "CHART_PADDING"
	EnvTension  = "CHART_TENSION"
	EnvPolicy   = "CHART_POLICY"
	EnvCurrency = "CHART_CURRENCY"
	EnvWidth    = "CHART_WIDTH"
	EnvHeight   = "CHART_HEIGHT"
	EnvCache    = "CHART_CACHE"
	EnvVerbose  = "CHART_VERBOSE"
)

// Env returns the global flags as environment variables.
func Env() []string {
	return []string{
		EnvPadding + "=" + strconv.FormatFloat(*padding, 'f', -1, 64),
		EnvTension + "=" + strconv.FormatFloat(*tension, 'f', -1, 64),
		EnvPolicy + "=" + *policy,
		EnvCurrency + "=" + *currency,
		EnvWidth + "=" + strconv.FormatFloat(*width, 'f', -1, 64),
		EnvHeight + "=" + strconv.FormatFloat(*height, 'f', -1, 64),
		EnvCache + "=" + *CacheDir,
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
}

// RunExtension attempts to find and execute an external chartctl-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "chartctl-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		vlogf("find-extension name=%q error=%q", externalCmdName, err)
		return false, 0
	}

	// Found external command, execute it
	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(), Env()...)
	vlogf("run-extension name=%q args=%q", externalCmdName, args)

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		// If it's not an ExitError or we can't get the status, report a generic error
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)

		return true, 1 // Indicate that an attempt was made, but it failed
	}

	return true, 0 // External command executed successfully with exit code 0
}
