package main

import (
	"fmt"
	"io"

	"github.com/Faultbox/orbitalsim/internal/orbital"
)

// promptState reads the three quantum numbers from the given reader,
// prompting on stdout the way the simulator always has.
func promptState(r io.Reader) (orbital.State, error) {
	var s orbital.State

	fmt.Println("Hydrogen Atom Orbital Simulator.")

	fmt.Print("Enter desired principal quantum number........ n = ")
	if _, err := fmt.Fscan(r, &s.N); err != nil {
		return orbital.State{}, fmt.Errorf("reading n: %w", err)
	}

	fmt.Print("Enter desired angular momentum quantum number. l = ")
	if _, err := fmt.Fscan(r, &s.L); err != nil {
		return orbital.State{}, fmt.Errorf("reading l: %w", err)
	}

	fmt.Print("Enter desired magnetic quantum number........ ml = ")
	if _, err := fmt.Fscan(r, &s.M); err != nil {
		return orbital.State{}, fmt.Errorf("reading ml: %w", err)
	}
	fmt.Println()

	return s, nil
}
