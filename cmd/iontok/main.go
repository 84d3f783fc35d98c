package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ionscan/iontok/internal/cli"
	"github.com/ionscan/iontok/internal/config"
	"github.com/ionscan/iontok/internal/logger"
	urfavecli "github.com/urfave/cli/v3"
)

const version = "0.1.0"

func main() {
	app := &urfavecli.Command{
		Name:    "iontok",
		Usage:   "Streaming tokenizer and conformance toolkit for the Ion text format",
		Version: version,
		Commands: []*urfavecli.Command{
			{
				Name:      "tokenize",
				Usage:     "Tokenize one input and print its token stream",
				ArgsUsage: "<file|->",
				Action:    tokenizeCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "Output format (text or json)",
						Value: "text",
					},
				},
			},
			{
				Name:      "scan",
				Usage:     "Batch-tokenize a conformance corpus and record kind coverage",
				ArgsUsage: "<root>",
				Action:    scanCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.IntFlag{
						Name:  "workers",
						Usage: "Max concurrent tokenizer goroutines (default 1)",
					},
					&urfavecli.StringFlag{
						Name:  "coverage-file",
						Usage: "Kind-coverage JSON output path",
					},
					&urfavecli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable debug output",
					},
				},
			},
			{
				Name:      "report",
				Usage:     "Render a saved kind-coverage file",
				ArgsUsage: "<coverage-file>",
				Action:    reportCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "Output format (json or html)",
						Value: "json",
					},
					&urfavecli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (use - for stdout)",
						Value:   "-",
					},
				},
			},
			{
				Name:   "version",
				Usage:  "Print the build version",
				Action: versionCommand,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Default().Error("%v", err)
		os.Exit(1)
	}
}

func tokenizeCommand(ctx context.Context, cmd *urfavecli.Command) error {
	format := cmd.String("format")
	path := cmd.Args().First()
	if path == "" {
		path = "-"
	}

	in, err := cli.OpenInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := cli.Tokenize(in, os.Stdout, format); err != nil {
		logger.Default().Error("%v", err)
		os.Exit(1)
	}
	return nil
}

func scanCommand(ctx context.Context, cmd *urfavecli.Command) error {
	cfg := config.Default()
	config.ApplyFlags(&cfg, cmd.Int("workers"), cmd.String("coverage-file"), cmd.Bool("verbose"))

	if err := cfg.Validate(); err != nil {
		logger.Default().Error("%v", err)
		os.Exit(2)
	}

	root := cmd.Args().First()
	if root == "" {
		root = "."
	}

	mismatches, err := cli.Scan(ctx, cfg, root, os.Stdout)
	if err != nil {
		return err
	}
	if mismatches > 0 {
		os.Exit(1)
	}
	return nil
}

func reportCommand(ctx context.Context, cmd *urfavecli.Command) error {
	format := cmd.String("format")
	output := cmd.String("output")
	coverageFile := cmd.Args().First()
	if coverageFile == "" {
		coverageFile = ".iontok/coverage.json"
	}

	return cli.Report(coverageFile, format, output)
}

func versionCommand(ctx context.Context, cmd *urfavecli.Command) error {
	fmt.Printf("iontok version %s\n", version)
	return nil
}
