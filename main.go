// othello-engine plays Othello against an opponent over a line based protocol
// on stdin/stdout, or against a human in the terminal with -tui.
package main

import (
	"flag"
	"fmt"
	"os"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	flagStrict     = flag.Bool("strict", false, "Reject illegal opponent moves")
	flagLog        = flag.String("log", "", `Debug log file ("auto" for the XDG cache dir)`)
	flagTUI        = flag.Bool("tui", false, "Play against the engine in the terminal")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config and exit")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("%s %s\n", appName, Version)
		return
	}

	cfg, err := InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlags(cfg)

	if *flagSaveConfig {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not save config: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "config written to %s\n", path)
		return
	}

	logCloser, err := openDebugLog(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logCloser.Close()

	if *flagTUI {
		err = StartUI(cfg)
	} else {
		err = NewSession(os.Stdin, os.Stdout, cfg.Strict).Run()
	}

	if err != nil {
		debugLog.Printf("exiting: %v", err)
		logCloser.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(cfg *Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strict":
			cfg.Strict = *flagStrict
		case "log":
			cfg.LogFile = *flagLog
		}
	})
}
