// Package rename fixes up sprite directories whose files were saved
// without an extension, appending .png to every entry whose name contains
// no dot.
package rename

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type (
	Cmd struct {
		out io.Writer
		Dir string `arg:"" optional:"" default:"Equipment" help:"Directory whose extensionless entries get the .png extension."`
	}
)

const ext = ".png"

func (c *Cmd) AfterApply() error {
	c.out = os.Stdout

	return nil
}

func (c *Cmd) Run() error {
	return Apply(c.Dir, c.out)
}

// Apply makes a single pass over one listing of dir and renames every
// entry whose name contains no dot to <name>.png. Entries that fail to
// rename are reported on out and the pass continues; their errors are
// joined into the returned error.
func Apply(dir string, out io.Writer) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to list directory %q: %w", dir, err)
	}

	fmt.Fprintf(out, "Appending %s to extensionless entries in %q.\n", ext, dir)

	var errs []error

	renamed := 0

	for _, entry := range entries {
		name := entry.Name()
		if strings.Contains(name, ".") {
			continue
		}

		dest := name + ext

		err = os.Rename(filepath.Join(dir, name), filepath.Join(dir, dest))
		if err != nil {
			fmt.Fprintf(out, "Failed: %s (%s)\n", name, err.Error())
			errs = append(errs, fmt.Errorf("failed to rename entry %q: %w", name, err))

			continue
		}

		fmt.Fprintf(out, "Renamed: %s -> %s\n", name, dest)

		renamed++
	}

	fmt.Fprintf(out, "Done. Renamed %d entries.\n", renamed)

	return errors.Join(errs...)
}
