// Package export renders ranked batches at the output boundary: CSV files,
// terminal leaderboards, and JSON. Scores are rounded to one decimal here
// and nowhere else.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/courtdata/statline/internal/model"
)

// exportRow is the CSV shape of one ranked record. Column order follows
// field order.
type exportRow struct {
	Rank      int     `csv:"Rank"`
	Name      string  `csv:"Name"`
	Points    float64 `csv:"Points"`
	Assists   float64 `csv:"Assists"`
	Rebounds  float64 `csv:"Rebounds"`
	Steals    float64 `csv:"Steals"`
	Turnovers float64 `csv:"Turnovers"`
	Score     string  `csv:"Performance Score"`
	Tier      string  `csv:"Tier"`
}

// WriteCSV writes ranked records as CSV. An empty batch still gets the
// header row, so downstream consumers always see the column contract.
func WriteCSV(w io.Writer, records []model.RankedRecord) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if len(records) == 0 {
		if err := enc.EncodeHeader(exportRow{}); err != nil {
			return eris.Wrap(err, "export: write csv header")
		}
	}

	for _, r := range records {
		row := exportRow{
			Rank:      r.Rank,
			Name:      r.Name,
			Points:    r.Points,
			Assists:   r.Assists,
			Rebounds:  r.Rebounds,
			Steals:    r.Steals,
			Turnovers: r.Turnovers,
			Score:     fmt.Sprintf("%.1f", r.Score),
			Tier:      string(r.Tier),
		}
		if err := enc.Encode(row); err != nil {
			return eris.Wrap(err, "export: write csv row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "export: flush csv")
	}
	return nil
}

// WriteCSVFile writes ranked records to a CSV file at path.
func WriteCSVFile(path string, records []model.RankedRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}
	defer f.Close()

	return WriteCSV(f, records)
}
