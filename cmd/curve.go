/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/flamestab/curve"
	"github.com/notargets/flamestab/plot"
)

// CurveCmd represents the curve command
var CurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Critical Peclet number and wavenumber per equivalence ratio",
	Long: `
Computes the neutral stability curve: one critical Peclet number per
equivalence ratio is printed, in input order. Failed equivalence ratios print
NaN, are logged on stderr and make the command exit non-zero.

flamestab curve -I case.yaml --csv curve.csv`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			d      *curve.Driver
			points []curve.Point
			out    = cmd.OutOrStdout()
			logger = slog.Default()
		)
		ip, err := loadParameters(viper.GetString("input"))
		if err != nil {
			return
		}
		if m, _ := cmd.Flags().GetString("method"); len(m) != 0 {
			ip.Search.Method = m
		}
		if show, _ := cmd.Flags().GetBool("printInput"); show {
			ip.Print()
		}
		if d, err = newDriver(ip, viper.GetInt("workers"), logger); err != nil {
			return
		}
		if points, err = d.Run(cmd.Context()); err != nil {
			return
		}
		for _, p := range points {
			pe := p.Critical.Pe
			if p.Err != nil {
				pe = math.NaN()
			}
			fmt.Fprintf(out, "%.3f\n", pe)
		}
		if csvFile, _ := cmd.Flags().GetString("csv"); len(csvFile) != 0 {
			if err = writeTable(csvFile, points); err != nil {
				return
			}
			logger.Info("wrote table", "path", csvFile, "rows", len(points))
		}
		if graph, _ := cmd.Flags().GetBool("graph"); graph {
			var pens []curve.Peninsula
			if pens, err = d.Peninsulas(cmd.Context(), curve.PeninsulaWavenumbers()); err != nil {
				return
			}
			if ls := plot.PeninsulaChart(pens); !ls.Empty() {
				ls.Render(1024, 768)
			}
			renderCritical(points)
			plot.Wait()
		}
		if failed := curve.Failed(points); len(failed) != 0 {
			err = fmt.Errorf("%d of %d equivalence ratios failed, first: %w", len(failed), len(points), failed[0].Err)
		}
		return
	},
}

func writeTable(path string, points []curve.Point) (err error) {
	var f *os.File
	if f, err = os.Create(path); err != nil {
		return
	}
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = cErr
		}
	}()
	return curve.WriteCSV(f, points)
}

func init() {
	rootCmd.AddCommand(CurveCmd)
	CurveCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for the run parameters, built-in C3H8/NH3 case if empty")
	CurveCmd.Flags().StringP("method", "m", "", "critical point search: brent or neldermead, overrides the input file")
	CurveCmd.Flags().String("csv", "", "also write the result table to this CSV file")
	CurveCmd.Flags().BoolP("graph", "g", false, "display the stability peninsulas and the critical curve")
	CurveCmd.Flags().Bool("printInput", false, "print the run parameters before computing")
	if err := viper.BindPFlag("input", CurveCmd.Flags().Lookup("inputConditionsFile")); err != nil {
		panic(err)
	}
}
