package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// logLevelEnv overrides the log level chosen by --verbose.
const logLevelEnv = "HEXHOP_LOG_LEVEL"

var rootFlags struct {
	verbose bool
}

var rootCmd = &cobra.Command{
	Use:   "hexhop",
	Short: "Greedy frog routing across a hexagonal pond",
	Long: "hexhop walks a frog from the start cell to the end cell of a hex pond,\n" +
		"preferring food, lily pads and reeds, and backtracking out of dead ends.",
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "log every search step")
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.Version = version
}

// newLogger returns a logrus logger writing to w. The level is Info, Debug
// with --verbose, and HEXHOP_LOG_LEVEL wins over both when it parses.
func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	if rootFlags.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if env, ok := os.LookupEnv(logLevelEnv); ok {
		lvl, err := logrus.ParseLevel(env)
		if err != nil {
			log.Warnf("ignoring %s=%q: %v", logLevelEnv, env, err)
		} else {
			log.SetLevel(lvl)
		}
	}

	return log
}
