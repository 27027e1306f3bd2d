//go:build !darwin

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Metal only exists on Apple platforms. Keep the command tree buildable
// everywhere so --help and manifest tooling work, but fail any command that
// needs the GPU.

func errNeedsDarwin() error {
	return fmt.Errorf("metalctl requires macOS: Metal is not available on %s/%s", runtime.GOOS, runtime.GOARCH)
}

func runInfo(cmd *cobra.Command, args []string) error    { return errNeedsDarwin() }
func runCompile(cmd *cobra.Command, args []string) error { return errNeedsDarwin() }
func runBench(cmd *cobra.Command, args []string) error   { return errNeedsDarwin() }
func runCapture(cmd *cobra.Command, args []string) error { return errNeedsDarwin() }
