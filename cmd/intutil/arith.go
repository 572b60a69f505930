package main

import (
	"fmt"

	"github.com/johnstarich/go/intutil/arith"
	"github.com/johnstarich/go/intutil/scan"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func (a App) add(c *cli.Context) error {
	x, y, err := parsePair(c)
	if err != nil {
		return err
	}
	result := arith.Add(x, y)
	if c.Bool("checked") {
		result, err = arith.AddChecked(x, y)
		if err != nil {
			return errors.Wrap(err, "add")
		}
	}
	fmt.Fprintln(c.App.Writer, result)
	return nil
}

func (a App) subtract(c *cli.Context) error {
	x, y, err := parsePair(c)
	if err != nil {
		return err
	}
	result := arith.Subtract(x, y)
	if c.Bool("checked") {
		result, err = arith.SubtractChecked(x, y)
		if err != nil {
			return errors.Wrap(err, "subtract")
		}
	}
	fmt.Fprintln(c.App.Writer, result)
	return nil
}

func (a App) max(c *cli.Context) error {
	values, err := parseInts(c.Args().Slice())
	if err != nil {
		return errors.Wrap(err, "max")
	}
	result := scan.FindMax(values, uint(len(values)))
	if c.Bool("strict") {
		result, err = scan.Max(values)
		if err != nil {
			return errors.Wrap(err, "max")
		}
	}
	fmt.Fprintln(c.App.Writer, result)
	return nil
}
