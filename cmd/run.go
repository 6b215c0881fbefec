package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Tarakreddy011/Advance-Disk-Scheduling-Simulator/internal/config"
	"github.com/Tarakreddy011/Advance-Disk-Scheduling-Simulator/internal/core/seek"
	"github.com/Tarakreddy011/Advance-Disk-Scheduling-Simulator/internal/report"
)

func runCmd() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run one scheduling simulation and print the summary",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "policy",
				Aliases: []string{"p"},
				Usage:   "Scheduling policy: fcfs, sstf, scan, cscan, look",
			},
			&cli.StringFlag{
				Name:     "queue",
				Aliases:  []string{"q"},
				Usage:    "Comma-separated cylinder positions, e.g. 98,183,37,122",
				Required: true,
			},
			&cli.IntFlag{
				Name:     "head",
				Usage:    "Current head position",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "direction",
				Aliases: []string{"d"},
				Usage:   "Initial direction for scan/cscan/look: up or down",
			},
			&cli.IntFlag{
				Name:  "bound",
				Usage: "Maximum cylinder index (overrides config)",
			},
			&cli.StringFlag{
				Name:  "plot",
				Usage: "Write a step-vs-position SVG plot to this path",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			policyName := cmd.String("policy")
			if policyName == "" {
				policyName = cfg.Disk.DefaultPolicy
			}
			policy, err := seek.ParsePolicy(policyName)
			if err != nil {
				return err
			}

			directionName := cmd.String("direction")
			if directionName == "" && policy.DirectionSensitive() {
				directionName = cfg.Disk.DefaultDirection
			}
			dir, err := seek.ParseDirection(directionName)
			if err != nil {
				return err
			}

			queue, err := parseQueue(cmd.String("queue"))
			if err != nil {
				return err
			}

			bound := int(cmd.Int("bound"))
			if bound == 0 {
				bound = cfg.Disk.Bound
			}

			res, err := seek.Schedule(seek.Request{
				Policy:    policy,
				Queue:     queue,
				Head:      int(cmd.Int("head")),
				Direction: dir,
				Bound:     bound,
			})
			if err != nil {
				return err
			}

			if err := report.WriteSummary(os.Stdout, policy, dir, res); err != nil {
				return err
			}

			if path := cmd.String("plot"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create plot file: %w", err)
				}
				defer f.Close()
				if err := report.WriteSVG(f, policy, res, bound); err != nil {
					return fmt.Errorf("write plot: %w", err)
				}
				fmt.Printf("\nPlot written to %s\n", path)
			}
			return nil
		},
	}
}

func parseQueue(s string) ([]int, error) {
	var queue []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pos, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid queue entry %q: expected an integer", part)
		}
		queue = append(queue, pos)
	}
	return queue, nil
}
