package tabular

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"
)

// ReadCSV reads a CSV file into a Table. The first row is the header.
// Options.Encoding selects a source charset by IANA name; the default is
// UTF-8 passthrough.
func ReadCSV(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "tabular: open csv")
	}
	defer f.Close()

	var r io.Reader = f
	if opts.Encoding != "" {
		enc, encErr := htmlindex.Get(opts.Encoding)
		if encErr != nil {
			return nil, eris.Wrapf(encErr, "tabular: unsupported encoding %q", opts.Encoding)
		}
		r = enc.NewDecoder().Reader(f)
	}

	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // allow variable fields
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "tabular: read csv")
	}

	if len(records) == 0 {
		return nil, eris.Wrapf(ErrEmptySource, "tabular: %s", path)
	}

	return &Table{
		Source: path,
		Header: records[0],
		Rows:   records[1:],
	}, nil
}
