package main

import (
	"fmt"
	"os"

	"github.com/felixge/fgprof"
)

// withProfile runs fn, recording a wall-clock pprof profile to path if path
// is non-empty.
func withProfile(path string, fn func() error) (err error) {
	if path == "" {
		return fn()
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	stop := fgprof.Start(f, fgprof.FormatPprof)
	runErr := fn()
	if err := stop(); err != nil {
		return fmt.Errorf("error writing profile: %s", err)
	}
	return runErr
}
