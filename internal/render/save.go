package render

import (
	"bufio"
	"path"
	"strings"

	"islandgen/internal/island"

	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"
)

// Save writes isl to name on fs using the exporter for format. The output is
// written to a temporary file first and renamed into place, so a failed
// export never leaves a partial file under name.
func Save(fs billy.Filesystem, name, format string, isl *island.Island, opts Options) (err error) {
	e, err := Lookup(format)
	if err != nil {
		return err
	}

	dir := path.Dir(name)
	if dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	temp, err := fs.TempFile(dir, "."+path.Base(name))
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(temp)
	err = e.Write(bw, isl, opts)
	if err == nil {
		err = bw.Flush()
	}
	err = multierr.Append(err, temp.Close())
	if err != nil {
		return multierr.Append(err, fs.Remove(temp.Name()))
	}
	return fs.Rename(temp.Name(), name)
}

// DefaultName returns the output file name for a format. Formats named after
// their extension get base plus the extension; others, which share an
// extension with another format, get the format name appended to base.
func DefaultName(base, format string) (string, error) {
	e, err := Lookup(format)
	if err != nil {
		return "", err
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if "."+format == e.Ext {
		return base + e.Ext, nil
	}
	return base + "-" + format + e.Ext, nil
}
