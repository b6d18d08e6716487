// Package main implements bsldump, a command line tool that decodes satsnet and bitcoin
// binary records from hex or raw bytes and prints their fields.
//
// Usage:
//
//	bsldump tx --hex 0200000001...
//	bsldump block --file block.bin --satsnet --verify
//
// Defaults are read from settings.conf (bsl_assetInfoEncoding, bsl_strictCompactLength,
// bsl_satsnet, bsl_convertConcurrency) and can be overridden by flags.
package main

import (
	"os"

	"github.com/sat20-labs/satsnet-slices/settings"
	"github.com/sat20-labs/satsnet-slices/ulogger"
	"github.com/urfave/cli/v2"
)

func main() {
	tSettings := settings.NewSettings()

	logger := ulogger.New("bsldump",
		ulogger.WithLevel(tSettings.LogLevel),
		ulogger.WithLoggerType(tSettings.LoggerType),
		ulogger.WithPretty(tSettings.PrettyLogs),
	)

	if err := tSettings.Validate(); err != nil {
		logger.Errorf("invalid settings: %v", err)
		os.Exit(1)
	}

	app := newApp(logger, tSettings)

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func newApp(logger ulogger.Logger, tSettings *settings.Settings) *cli.App {
	inputFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "hex",
			Usage: "hex encoded input",
		},
		&cli.StringFlag{
			Name:  "file",
			Usage: "file holding the raw input bytes",
		},
	}

	decodeFlags := append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "reject compact lengths that are not minimally encoded, nested ones included",
			Value: tSettings.Decoder.StrictCompactLength,
		},
		&cli.BoolFlag{
			Name:  "fixed",
			Usage: "decode asset infos with fixed width amount and binding sat",
			Value: tSettings.Decoder.AssetInfoEncoding == settings.AssetInfoEncodingFixed,
		},
		&cli.BoolFlag{
			Name:  "satsnet",
			Usage: "decode outputs in the satsnet layout, carrying asset infos",
			Value: tSettings.Decoder.SatsNet,
		},
	}, inputFlags...)

	blockFlags := append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "verify",
			Usage: "convert the transactions and check the merkle root",
		},
		&cli.IntFlag{
			Name:  "concurrency",
			Usage: "transactions converted in parallel when verifying",
			Value: tSettings.Decoder.ConvertConcurrency,
		},
	}, decodeFlags...)

	action := func(kind string) cli.ActionFunc {
		return func(c *cli.Context) error {
			input, err := readInput(c.String("hex"), c.String("file"), c.App.Reader)
			if err != nil {
				return err
			}

			d := &dumper{
				w:      c.App.Writer,
				logger: logger,
				opts:   optionsFromContext(c, tSettings),
			}

			return d.dump(c.Context, kind, input)
		}
	}

	return &cli.App{
		Name:  "bsldump",
		Usage: "Decode satsnet and bitcoin binary records",
		Commands: []*cli.Command{
			{Name: kindLen, Usage: "Decode a CompactLength", Action: action(kindLen), Flags: decodeFlags},
			{Name: kindString, Usage: "Decode a length prefixed string", Action: action(kindString), Flags: decodeFlags},
			{Name: kindAssetInfo, Usage: "Decode a single asset info", Action: action(kindAssetInfo), Flags: decodeFlags},
			{Name: kindAssetInfos, Usage: "Decode a counted list of asset infos", Action: action(kindAssetInfos), Flags: decodeFlags},
			{Name: kindSatsRanges, Usage: "Decode a counted list of sats ranges", Action: action(kindSatsRanges), Flags: decodeFlags},
			{Name: kindTx, Usage: "Decode a transaction", Action: action(kindTx), Flags: decodeFlags},
			{Name: kindHeader, Usage: "Decode an 80 byte block header", Action: action(kindHeader), Flags: decodeFlags},
			{Name: kindBlock, Usage: "Decode a block", Action: action(kindBlock), Flags: blockFlags},
		},
	}
}
