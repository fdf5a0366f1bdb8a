// Command decxdemo exercises the codec and eval cores end to end, in the
// same spirit as the teacher's main.go: parse a handful of values, run
// them through the library, and print the results.
package main

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/trippwill/decx/codec"
	"github.com/trippwill/decx/decimal"
	"github.com/trippwill/decx/eval"
)

func main() {
	format := "%-10s\t%-20s\t%s\n"
	sep := "-------------------------------------"

	fmt.Println("codec round trips")
	println(sep)
	for _, s := range []string{"0", "-0", "1", "50", "51", "NaN", "Infinity", "-Infinity", "123.456", "1e50"} {
		d, err := decimal.NewFromString(s)
		if err != nil {
			fmt.Printf(format, s, "parse error", err)
			continue
		}
		b := codec.Encode(d)
		back := codec.Decode(b)
		fmt.Printf(format, s, fmt.Sprintf("%d bytes", len(b)), back.String())
	}
	println(sep)

	fmt.Println("evaluator")
	println(sep)

	e := eval.NewEvaluator(decimal.BasicContext())
	scope, err := eval.NewScope(map[string]*decimal.Decimal{
		"x": mustParse("2"),
		"y": mustParse("3"),
	}, map[string]eval.Func{
		"max": func(args []*decimal.Decimal) (*decimal.Decimal, error) {
			best := args[0]
			for _, a := range args[1:] {
				if a.Gt(best) {
					best = a
				}
			}
			return best, nil
		},
	})
	if err != nil {
		panic(err)
	}

	for _, expr := range []string{"0.1 + 0.2", "2x + max(1, 5, 3)", "x^y"} {
		result, err := e.Evaluate(expr, scope)
		if err != nil {
			fmt.Printf(format, expr, "error", err)
			continue
		}
		fmt.Printf(format, expr, e.Expression(), result.String())
	}

	result, err := e.Rebind(map[string]*decimal.Decimal{"y": mustParse("-3")}, nil)
	if err != nil {
		panic(err)
	}
	fmt.Printf(format, "x^y (y=-3)", result.Format(language.English), result.String())
}

func mustParse(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
