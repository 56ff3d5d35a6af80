// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	cli "github.com/urfave/cli/v2"

	"github.com/db47h/numlit"
)

func parseFloat(lit string) error {
	f, err := numlit.ParseDouble([]byte(lit), 0, len(lit))
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", f)
	return nil
}

func parseBigInt(lit string, parallel bool) error {
	v, err := numlit.ParseBigIntLiteral([]byte(lit), 0, len(lit), parallel)
	if err != nil {
		return err
	}
	fmt.Println(v.String())
	return nil
}

func parseBigDecimal(lit string, parallel bool) error {
	v, err := numlit.ParseBigDecimalLiteral([]byte(lit), 0, len(lit), parallel)
	if err != nil {
		return err
	}
	fmt.Printf("%s (unscaled %s, exponent %d)\n", v.String(), v.Coefficient().String(), v.Exponent())
	return nil
}

func parseJSON(lit string) error {
	f, err := numlit.ParseJSONNumber([]byte(lit), 0, len(lit))
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", f)
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "numlit"
	app.Usage = "parse numeric literals with the numlit library"
	app.Action = func(c *cli.Context) error {
		cli.ShowAppHelp(c)
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:      "float",
			Aliases:   []string{"f"},
			Usage:     "parse a decimal or hex float literal to float64",
			ArgsUsage: "literal",
			Action: func(c *cli.Context) error {
				args := c.Args()
				if args.Len() < 1 {
					return cli.Exit("missing literal argument", 1)
				}
				if err := parseFloat(args.First()); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "bigint",
			Aliases:   []string{"i"},
			Usage:     "parse a decimal or 0x-prefixed hex integer literal",
			ArgsUsage: "literal",
			Action: func(c *cli.Context) error {
				args := c.Args()
				if args.Len() < 1 {
					return cli.Exit("missing literal argument", 1)
				}
				if err := parseBigInt(args.First(), c.Bool("parallel")); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "parallel",
					Usage: "allow the digit-range parser to fork onto the work-stealing pool",
				},
			},
		},
		{
			Name:      "bigdecimal",
			Aliases:   []string{"d"},
			Usage:     "parse an arbitrary-precision decimal literal",
			ArgsUsage: "literal",
			Action: func(c *cli.Context) error {
				args := c.Args()
				if args.Len() < 1 {
					return cli.Exit("missing literal argument", 1)
				}
				if err := parseBigDecimal(args.First(), c.Bool("parallel")); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "parallel",
					Usage: "allow the digit-range parser to fork onto the work-stealing pool",
				},
			},
		},
		{
			Name:      "json",
			Aliases:   []string{"j"},
			Usage:     "parse a JSON number token",
			ArgsUsage: "literal",
			Action: func(c *cli.Context) error {
				args := c.Args()
				if args.Len() < 1 {
					return cli.Exit("missing literal argument", 1)
				}
				if err := parseJSON(args.First()); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "limits",
			Usage:     "print the grammar constants this build was compiled with",
			ArgsUsage: " ",
			Action: func(c *cli.Context) error {
				fmt.Println("MaxInputLength          ", numlit.MaxInputLength)
				fmt.Println("MaxDecimalDigits        ", numlit.MaxDecimalDigits)
				fmt.Println("MaxDigitCount           ", numlit.MaxDigitCount)
				fmt.Println("MaxExponentNumber       ", numlit.MaxExponentNumber)
				fmt.Println("RecursionThreshold      ", numlit.RecursionThreshold)
				fmt.Println("DefaultParallelThreshold", strconv.Itoa(numlit.DefaultParallelThreshold))
				fmt.Println("ManyDigitsThreshold     ", numlit.ManyDigitsThreshold)
				return nil
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
