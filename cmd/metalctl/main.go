// Package main provides the metalctl CLI entry point.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	version   = "0.1.0"
	commit    = "dev"
	buildTime = "unknown" // Set via ldflags: -X main.buildTime=$(date +%Y%m%d-%H%M%S)
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "metalctl",
		Short: "metalctl - Metal GPU tooling built on the metalbind bindings",
		Long: `metalctl drives Apple's Metal API through the metalbind Go bindings.

Commands:
  • info     - enumerate Metal devices and their capabilities
  • compile  - compile .metal sources and report diagnostics, with caching
  • bench    - compare a GPU compute kernel against the CPU
  • capture  - record a .gputrace of a GPU workload`,
	}

	// Version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("metalctl v%s (%s) built %s\n", version, commit, buildTime)
		},
	})

	// Info command
	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show Metal devices and capabilities",
		RunE:  runInfo,
	}
	rootCmd.AddCommand(infoCmd)

	// Compile command
	compileCmd := &cobra.Command{
		Use:   "compile [files...]",
		Short: "Compile Metal shader sources",
		Long:  "Compile .metal sources given as arguments or listed in a YAML manifest, reporting diagnostics and entry points",
		RunE:  runCompile,
	}
	compileCmd.Flags().String("manifest", getEnvStr("METALCTL_MANIFEST", ""), "Shader manifest file (shaders.yaml)")
	compileCmd.Flags().String("cache-dir", getEnvStr("METALCTL_CACHE_DIR", ""), "Compile cache directory (empty to disable caching)")
	compileCmd.Flags().String("language-version", "", "Metal language version for sources given as arguments (e.g. 2.4)")
	compileCmd.Flags().Bool("fast-math", false, "Enable fast math for sources given as arguments")
	rootCmd.AddCommand(compileCmd)

	// Bench command
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark GPU compute against the CPU",
		Long:  "Run saxpy and dot over N float32 elements on the GPU and on the CPU, comparing wall-clock time and verifying results",
		RunE:  runBench,
	}
	benchCmd.Flags().Int("size", getEnvInt("METALCTL_BENCH_SIZE", 1<<22), "Number of float32 elements")
	benchCmd.Flags().Int("runs", getEnvInt("METALCTL_BENCH_RUNS", 5), "Timed runs per side (best run wins)")
	rootCmd.AddCommand(benchCmd)

	// Capture command
	captureCmd := &cobra.Command{
		Use:   "capture",
		Short: "Record a GPU trace of the bench workload",
		Long:  "Run the bench workload under MTLCaptureManager and write a .gputrace document for Xcode's GPU debugger",
		RunE:  runCapture,
	}
	captureCmd.Flags().String("output", "", "Output .gputrace path (default metalctl-<uuid>.gputrace)")
	captureCmd.Flags().Int("size", getEnvInt("METALCTL_BENCH_SIZE", 1<<20), "Number of float32 elements in the captured workload")
	rootCmd.AddCommand(captureCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// getEnvStr returns environment variable or default
func getEnvStr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns environment variable as int or default
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvBool returns environment variable as bool or default
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultVal
}
