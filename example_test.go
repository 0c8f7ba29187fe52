package modthree_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aretw0/modthree"
	"github.com/aretw0/modthree/pkg/domain"
	"github.com/aretw0/modthree/pkg/dsl"
)

func ExampleNew() {
	eng, err := modthree.New("mod3")
	if err != nil {
		log.Fatal(err)
	}

	for _, in := range []string{"110", "1010", "1011"} {
		r, err := eng.EvaluateString(context.Background(), in)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s -> %d\n", in, r)
	}
	// Output:
	// 110 -> 0
	// 1010 -> 1
	// 1011 -> 2
}

func ExampleEngine_Trace() {
	eng, err := modthree.New("mod3")
	if err != nil {
		log.Fatal(err)
	}

	run, err := eng.Trace(context.Background(), domain.SymbolsOf("1011"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(run.Path, run.Output)
	// Output: [S0 S1 S2 S2 S2] 2
}

// ExampleNew_dsl builds a machine in code and evaluates it.
func ExampleNew_dsl() {
	b := dsl.New("ends-with-ab").Alphabet("a", "b")
	b.State("Start").Initial().Output(0).On("a", "A").On("b", "Start")
	b.State("A").Output(0).On("a", "A").On("b", "AB")
	b.State("AB").Output(1).On("a", "A").On("b", "Start")

	m, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	eng, err := modthree.New("", modthree.WithMachine(m))
	if err != nil {
		log.Fatal(err)
	}

	for _, in := range []string{"aab", "aba", "c"} {
		r, err := eng.EvaluateString(context.Background(), in)
		var symErr *domain.InvalidSymbolError
		switch {
		case errors.As(err, &symErr):
			fmt.Printf("%s: rejected %q\n", in, string(symErr.Symbol))
		case err != nil:
			log.Fatal(err)
		default:
			fmt.Printf("%s: %d\n", in, r)
		}
	}
	// Output:
	// aab: 1
	// aba: 0
	// c: rejected "c"
}
