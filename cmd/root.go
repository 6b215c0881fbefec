package cmd

import (
	"github.com/urfave/cli/v3"
)

var version = "dev"

func App() *cli.Command {
	return &cli.Command{
		Name:    "diskschedsim",
		Version: version,
		Usage:   "Disk head scheduling simulator: plan seek order and distance under FCFS, SSTF, SCAN, C-SCAN and LOOK.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML config file",
				Sources: cli.EnvVars("ADSS_CONFIG_PATH"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("ADSS_LOGGING_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			runCmd(),
			serveCmd(),
		},
	}
}
