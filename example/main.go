// Command fraccalc demonstrates the fraction library: the demo command
// walks through construction, arithmetic, comparison, and conversion, and
// the read command evaluates fractions from stdin line by line.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"fraclib/src/math/fraction"
)

func main() {
	app := cli.NewApp()
	app.Name = "fraccalc"
	app.Usage = "exact fraction arithmetic over machine integers"
	app.Action = demoCmd
	app.Commands = []*cli.Command{
		{
			Name:   "demo",
			Usage:  "walk through the library features",
			Action: demoCmd,
		},
		{
			Name:  "read",
			Usage: "read decimal or fraction literals from stdin, one per line",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "keep",
					Usage: "echo values as scanned instead of simplifying",
				},
			},
			Action: readCmd,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func show(msg string, f fraction.Frac) {
	fmt.Printf("%s: %s\n", color.CyanString(msg), f)
}

func demoCmd(c *cli.Context) error {
	heading := color.New(color.FgGreen, color.Bold)

	heading.Println("construction and assignment")
	f, err := fraction.FromFloat32(0.5)
	if err != nil {
		return err
	}
	show("from decimal", f)

	simplified, err := fraction.ParseSimplified("5/10")
	if err != nil {
		return err
	}
	show("from string, simplified", simplified)

	if err := f.SetFloat32(0.6); err != nil {
		return err
	}
	show("reassigned by decimal", f)
	if err := f.SetString("1/2"); err != nil {
		return err
	}
	show("reassigned by string", f)

	half := fraction.Must(fraction.New(1, 2))
	show("from numerator and denominator", half)
	show("from integer", fraction.FromInt(5))
	show("default", fraction.Zero())
	show("mixed decimal", fraction.Must(fraction.FromFloat32(1.5)))
	mixed, err := fraction.Parse("1 1/2")
	if err != nil {
		return err
	}
	show("mixed string, collapsed to improper", mixed)

	heading.Println("arithmetic")
	if f, err = f.Add(half); err != nil {
		return err
	}
	show("fraction + fraction", f)
	if f, err = f.AddString("1/2"); err != nil {
		return err
	}
	show("fraction + string", f)
	if f, err = f.MulFloat32(0.2); err != nil {
		return err
	}
	show("fraction * decimal", f)
	if f, err = f.AddString("2 1/2"); err != nil {
		return err
	}
	show("fraction + string (mixed)", f)

	point5, err := fraction.FromFloat32(0.5)
	if err != nil {
		return err
	}
	if f, err = point5.Div(f); err != nil {
		return err
	}
	show("decimal / fraction, simplified", f.Simplified())

	heading.Println("increment and decrement")
	f = fraction.Must(fraction.NewMixed(1, 1, 2))
	if err := f.Inc(); err != nil {
		return err
	}
	show("after Inc", f)
	if err := f.Dec(); err != nil {
		return err
	}
	show("after Dec", f)
	prev, err := f.PostInc()
	if err != nil {
		return err
	}
	show("PostInc returned", prev)
	show("receiver after PostInc", f)

	if err := f.MulAssignInt(-1); err != nil {
		return err
	}
	show("compound *= -1 flips the sign", f)

	heading.Println("comparison")
	if f.Equal(f) {
		show("equal to itself", f)
	}
	if eq, err := f.EqualString("2/92"); err == nil && !eq {
		show("not equal to 2/92", f)
	}
	if cmp, err := f.CmpFloat32(2.6); err == nil && cmp < 0 {
		show("less than 2.6", f)
	}

	heading.Println("improper form")
	show("2 1/2 as improper", fraction.Must(fraction.NewMixed(2, 1, 2)).Improper())

	return nil
}

func readCmd(c *cli.Context) error {
	s := fraction.NewScanner(os.Stdin)
	for s.Scan() {
		f := s.Frac()
		if !c.Bool("keep") {
			f = f.Simplified()
		}
		fmt.Println(f)
	}
	return s.Err()
}
