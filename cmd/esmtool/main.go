package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"nas_esm/internal/common/logger"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "esmtool",
		Usage: "decode, encode and verify NAS EPS session management messages",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "trace, debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "also write the log to this file, rotated by size",
			},
		},
		Before: func(c *cli.Context) error {
			logger.ParseLogLevel(c.String("log-level"))
			return nil
		},
		Commands: []*cli.Command{
			decodeCommand(),
			encodeCommand(),
			verifyCommand(),
		},
	}
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("esmtool failed")
	}
}
