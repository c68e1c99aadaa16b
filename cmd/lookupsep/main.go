// Package main is the entry point for the lookupsep CLI application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	lscli "github.com/NikitaCOEUR/lookupsep/internal/cli"
	"github.com/NikitaCOEUR/lookupsep/pkg/version"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// common reads the flags shared by the field commands
func common(cmd *cli.Command) lscli.Common {
	return lscli.Common{
		ConfigPath: cmd.String("config"),
		LogLevel:   cmd.String("log-level"),
		BaseURL:    cmd.String("base-url"),
		Token:      cmd.String("token"),
	}
}

// apiFlags override the api section of the config
func apiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "base-url",
			Usage:   "Base URL of the records API",
			Sources: cli.EnvVars("LOOKUPSEP_API_URL"),
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "Bearer token sent with every request",
			Sources: cli.EnvVars("LOOKUPSEP_API_TOKEN"),
		},
	}
}

func separatorFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "separator",
		Aliases: []string{"s"},
		Usage:   "Separator between the halves (defaults to the config separator)",
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "lookupsep",
		Usage:   "Edit one half of a separated pair with remote suggestions",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file (defaults to .lookupsep.* in the current directory)",
				Sources: cli.EnvVars("LOOKUPSEP_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOOKUPSEP_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "edit",
				Usage: "Open the interactive field and print the final value",
				Flags: append(apiFlags(),
					&cli.StringFlag{
						Name:  "value",
						Usage: "Stored value to start from (overrides the config)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Also write the final value as JSON to this file",
					},
					&cli.StringFlag{
						Name:    "log-file",
						Usage:   "Write logs to this file while the field is open",
						Sources: cli.EnvVars("LOOKUPSEP_LOG_FILE"),
					},
				),
				Action: func(_ context.Context, cmd *cli.Command) error {
					return lscli.Edit(lscli.EditParams{
						Common:     common(cmd),
						Value:      cmd.String("value"),
						OutputPath: cmd.String("output"),
						LogPath:    cmd.String("log-file"),
					})
				},
			},
			{
				Name:      "suggest",
				Usage:     "Print the suggestions for a query",
				ArgsUsage: "<query>",
				Flags: append(apiFlags(),
					&cli.BoolFlag{
						Name:  "composite",
						Usage: "Print whole stored values instead of the active half",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print a JSON array",
					},
				),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return lscli.Suggest(ctx, lscli.SuggestParams{
						Common:    common(cmd),
						Query:     cmd.Args().First(),
						Composite: cmd.Bool("composite"),
						JSON:      cmd.Bool("json"),
					})
				},
			},
			{
				Name:      "split",
				Usage:     "Print the two halves of a stored value",
				ArgsUsage: "<value>",
				Flags: []cli.Flag{
					separatorFlag(),
					&cli.StringFlag{
						Name:  "side",
						Usage: "Print only this half (left or right)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("value required")
					}
					return lscli.Split(lscli.SplitParams{
						ConfigPath: cmd.String("config"),
						Value:      cmd.Args().First(),
						Separator:  cmd.String("separator"),
						Side:       cmd.String("side"),
					})
				},
			},
			{
				Name:      "join",
				Usage:     "Print the stored value for two halves",
				ArgsUsage: "<left> <right>",
				Flags:     []cli.Flag{separatorFlag()},
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 2 {
						return fmt.Errorf("left and right halves required")
					}
					return lscli.Join(lscli.JoinParams{
						ConfigPath: cmd.String("config"),
						Left:       cmd.Args().Get(0),
						Right:      cmd.Args().Get(1),
						Separator:  cmd.String("separator"),
					})
				},
			},
			{
				Name:  "show",
				Usage: "Show the field built from the configuration",
				Flags: append(apiFlags(),
					&cli.StringFlag{
						Name:  "value",
						Usage: "Stored value to show (overrides the config)",
					},
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "Run one search and show the suggestions",
					},
				),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return lscli.Show(ctx, lscli.ShowParams{
						Common: common(cmd),
						Value:  cmd.String("value"),
						Query:  cmd.String("query"),
					})
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a lookupsep configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := cmd.String("config")
					if cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return lscli.Validate(configPath)
				},
			},
			{
				Name:      "schema",
				Usage:     "Display or export the JSON Schema for lookupsep configuration files",
				ArgsUsage: "[output-file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					outputPath := cmd.String("output")
					if outputPath == "" && cmd.Args().Len() > 0 {
						outputPath = cmd.Args().Get(0)
					}
					return lscli.Schema(outputPath)
				},
			},
			{
				Name:  "init",
				Usage: "Create a sample config file in the current folder",
				Action: func(_ context.Context, _ *cli.Command) error {
					return lscli.Init()
				},
			},
		},
	}
}
