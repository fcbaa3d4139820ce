package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/motion/pkg/animation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "curves",
		Short: "List easing curves or sample one",
		Long: `Without arguments, list the available easing curve names.

With curve names as arguments, print a table sampling each curve at
regular intervals, useful for eyeballing a curve's shape before using
it in a scene or in code.`,
		Usage: "motion curves [name ...]",
		Run:   runCurves,
	})
}

const curveSamples = 10

func runCurves(args []string) error {
	if len(args) == 0 {
		for _, name := range animation.CurveNames() {
			fmt.Println(name)
		}
		return nil
	}

	curves := make([]animation.Easing, 0, len(args))
	for _, name := range args {
		curve, ok := animation.CurveByName(name)
		if !ok {
			return fmt.Errorf("unknown easing %q, run 'motion curves' for the list", name)
		}
		curves = append(curves, curve)
	}

	header := []string{fmt.Sprintf("%-6s", "t")}
	for _, name := range args {
		header = append(header, fmt.Sprintf("%12s", name))
	}
	fmt.Println(strings.Join(header, " "))

	for i := 0; i <= curveSamples; i++ {
		t := float64(i) / curveSamples
		row := []string{fmt.Sprintf("%-6.2f", t)}
		for _, curve := range curves {
			row = append(row, fmt.Sprintf("%12.4f", curve(t)))
		}
		fmt.Println(strings.Join(row, " "))
	}
	return nil
}
