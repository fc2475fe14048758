package curve

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var tableHeader = []string{"phi", "le_eff", "sigma", "beta", "t_burned", "lambda_u", "n_crit", "pe_crit", "error"}

// WriteCSV writes one row per point in the order given.
func WriteCSV(w io.Writer, points []Point) (err error) {
	cw := csv.NewWriter(w)
	if err = cw.Write(tableHeader); err != nil {
		return
	}
	ff := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, p := range points {
		var msg string
		if p.Err != nil {
			msg = p.Err.Error()
		}
		rec := []string{
			ff(p.Phi), ff(p.LeEff),
			ff(p.Mixture.Sigma), ff(p.Mixture.Beta), ff(p.Mixture.TB), ff(p.Mixture.Lambda),
			ff(p.Critical.N), ff(p.Critical.Pe),
			msg,
		}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads a table written by WriteCSV. Error messages come back as
// plain errors.
func ReadCSV(r io.Reader) (points []Point, err error) {
	var (
		records [][]string
	)
	cr := csv.NewReader(bufio.NewReader(r))
	if records, err = cr.ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) != len(tableHeader) {
			return nil, fmt.Errorf("curve: row %d has %d fields, want %d", i, len(rec), len(tableHeader))
		}
		var vals [8]float64
		for j := range vals {
			if vals[j], err = strconv.ParseFloat(rec[j], 64); err != nil {
				return nil, fmt.Errorf("curve: row %d, column %s: %w", i, tableHeader[j], err)
			}
		}
		p := Point{Case: Case{Phi: vals[0], LeEff: vals[1]}}
		p.Mixture.Phi = vals[0]
		p.Mixture.Sigma, p.Mixture.Beta, p.Mixture.TB = vals[2], vals[3], vals[4]
		p.Mixture.Lambda = vals[5]
		p.Critical.N, p.Critical.Pe = vals[6], vals[7]
		if len(rec[8]) != 0 {
			p.Err = errors.New(rec[8])
		}
		points = append(points, p)
	}
	return
}
