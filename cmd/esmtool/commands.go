package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"nas_esm/internal/common/logger"
	"nas_esm/internal/inspect"
	"nas_esm/pkg/config"
	"nas_esm/pkg/nas/esm"
	"nas_esm/pkg/nas/ies"
)

func newInspector(level, cmd string, file logger.RotatingFile) (*inspect.Inspector, func() error) {
	out, closeLog := logger.Output(file)
	l := logger.InitLogger(out, level, map[string]string{"mod": "esmtool", "cmd": cmd})
	return inspect.New(l), closeLog
}

func logFile(c *cli.Context) logger.RotatingFile {
	return logger.RotatingFile{Filename: c.String("log-file")}
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "decode a hex encoded plain ESM message",
		ArgsUsage: "<hex>",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("missing hex pdu", 2)
			}
			pdu, err := hex.DecodeString(strings.Join(c.Args().Slice(), ""))
			if err != nil {
				return fmt.Errorf("bad hex pdu: %w", err)
			}
			i, closeLog := newInspector(c.String("log-level"), "decode", logFile(c))
			defer closeLog()
			if _, err := i.Decode(pdu); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return nil
		},
	}
}

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "encode an ESM status message and print it as hex",
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "ebi", Usage: "EPS bearer identity"},
			&cli.UintFlag{Name: "pti", Usage: "procedure transaction identity"},
			&cli.UintFlag{Name: "cause", Value: uint(ies.EsmCauseProtocolErrorUnspecified), Usage: "ESM cause"},
		},
		Action: func(c *cli.Context) error {
			if c.Uint("ebi") > 0x0f || c.Uint("pti") > 0xff || c.Uint("cause") > 0xff {
				return cli.Exit("ebi, pti or cause out of range", 2)
			}
			msg := esm.NewEsmStatus(uint8(c.Uint("ebi")), uint8(c.Uint("pti")), ies.EsmCause(c.Uint("cause")))
			pdu, err := esm.Marshal(msg)
			if err != nil {
				return fmt.Errorf("encode ESM status: %w", err)
			}
			log.Debug().Str("cause", msg.EsmCause.String()).Msg("Encoded ESM status")
			fmt.Fprintln(c.App.Writer, hex.EncodeToString(pdu))
			return nil
		},
	}
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "round trip every vector of a config file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "config/vectors.yml", Usage: "path to configuration file"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			level := c.String("log-level")
			if !c.IsSet("log-level") && cfg.Log.Level != "" {
				level = cfg.Log.Level
				logger.ParseLogLevel(level)
			}

			file := logFile(c)
			if !c.IsSet("log-file") && cfg.Log.File != "" {
				file = logger.RotatingFile{
					Filename:   cfg.Log.File,
					MaxSize:    cfg.Log.MaxSize,
					MaxBackups: cfg.Log.MaxBackups,
					MaxAge:     cfg.Log.MaxAge,
					Compress:   cfg.Log.Compress,
				}
			}
			i, closeLog := newInspector(level, "verify", file)
			defer closeLog()

			allPassed, results := i.VerifyAll(cfg.Vectors)
			failed := 0
			for _, r := range results {
				if !r.Passed {
					failed++
				}
			}
			log.Info().Int("vectors", len(results)).Int("failed", failed).Msg("Verification finished")
			if !allPassed {
				return cli.Exit(fmt.Sprintf("%d of %d vectors failed", failed, len(results)), 1)
			}
			return nil
		},
	}
}
