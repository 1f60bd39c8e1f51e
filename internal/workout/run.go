package workout

import (
	"fmt"
	"io"
)

// Run writes the summary line of a single workout
func Run(w io.Writer, wk Workout) error {
	_, err := fmt.Fprintln(w, wk.Summary().Message())
	return err
}

// RunPackages dispatches and prints each package in order, stopping at the first failure
func RunPackages(w io.Writer, pkgs []Package) error {
	for i, p := range pkgs {
		wk, err := ReadPackage(p.Type, p.Data)
		if err != nil {
			return fmt.Errorf("package %d: %w", i, err)
		}
		if err := Run(w, wk); err != nil {
			return fmt.Errorf("writing package %d: %w", i, err)
		}
	}
	return nil
}
