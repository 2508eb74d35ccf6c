// Command rv32isim drives the core against a firmware image: it loads the
// image into a read-only flash backend, asserts reset for one tick,
// deasserts and runs a configurable number of ticks, then reports the
// final nonzero registers.
package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/urfave/cli.v2"

	"github.com/cjohnson/rv32icore/core"
	"github.com/cjohnson/rv32icore/mem"
)

func main() {
	app := &cli.App{
		Name:      "rv32isim",
		Usage:     "cycle-accurate five-stage RV32I pipeline simulator",
		ArgsUsage: "<firmware-image>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "cycles",
				Usage: "ticks to run after the single reset tick",
				Value: 1000,
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "discard the retirement trace instead of printing it",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowAppHelp(c)
		return cli.Exit("usage: rv32isim [options] <firmware-image>", 1)
	}

	imagePath := c.Args().Get(0)

	flash := mem.NewVirtualFlash(4096)
	if err := flash.LoadImageFromFile(imagePath); err != nil {
		return cli.Exit(fmt.Sprintf("error loading firmware: %v", err), 1)
	}

	traceWriter := io.Writer(os.Stdout)
	if c.Bool("quiet") {
		traceWriter = io.Discard
	}

	hart := core.New(core.WithTraceWriter(traceWriter))

	hart.Tick(flash, true)
	for i := 0; i < c.Int("cycles"); i++ {
		hart.Tick(flash, false)
	}

	for r := uint32(0); r < 32; r++ {
		if v := hart.XReg(r); v != 0 {
			fmt.Printf("r[%d] = 0x%x\n", r, v)
		}
	}

	return nil
}
