package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/goxchange/goxchange/config"
	"github.com/goxchange/goxchange/log"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "goxchange",
		Usage:   "normalise exchange market and account data into one canonical model",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the settings file",
				Value:   "goxchange.yaml",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "inspect and validate the settings file",
				Subcommands: []*cli.Command{
					{
						Name:   "validate",
						Usage:  "load the settings file and report whether it is usable",
						Action: configValidate,
					},
					{
						Name:   "dump",
						Usage:  "print the effective settings after defaults are applied",
						Action: configDump,
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "defaults",
								Usage: "dump the built-in defaults instead of reading a file",
							},
						},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func configValidate(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	fmt.Printf("%s: OK (%d exchange(s) configured)\n", c.String("config"), len(cfg.Exchanges))
	return nil
}

func configDump(c *cli.Context) error {
	var (
		cfg *config.Config
		err error
	)
	if c.Bool("defaults") {
		cfg = config.Default()
	} else {
		cfg, err = config.Load(c.String("config"))
		if err != nil {
			return err
		}
	}

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
