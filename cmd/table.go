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
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/flamestab/curve"
	"github.com/notargets/flamestab/plot"
)

// TableCmd represents the table command
var TableCmd = &cobra.Command{
	Use:   "table file.csv",
	Short: "Show a critical point table written by curve --csv",
	Long: `
Reads a result table written by "flamestab curve --csv" and prints one
"phi n_crit Pe_crit" line per equivalence ratio, without recomputing.

flamestab table curve.csv -g`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			f      *os.File
			points []curve.Point
			out    = cmd.OutOrStdout()
		)
		if f, err = os.Open(args[0]); err != nil {
			return
		}
		defer f.Close()
		if points, err = curve.ReadCSV(f); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		for _, p := range points {
			n, pe := p.Critical.N, p.Critical.Pe
			if p.Err != nil {
				n, pe = math.NaN(), math.NaN()
			}
			fmt.Fprintf(out, "%5.2f %8.3f %10.3f\n", p.Phi, n, pe)
		}
		if graph, _ := cmd.Flags().GetBool("graph"); graph {
			renderCritical(points)
			plot.Wait()
		}
		return
	},
}

// renderCritical opens the Pe_crit and n_crit charts, skipping a chart with
// nothing to draw.
func renderCritical(points []curve.Point) {
	peChart, nChart := plot.CriticalCharts(points)
	for _, ls := range []*plot.LineSet{peChart, nChart} {
		if !ls.Empty() {
			ls.Render(800, 600)
		}
	}
}

func init() {
	rootCmd.AddCommand(TableCmd)
	TableCmd.Flags().BoolP("graph", "g", false, "display the critical curve")
}
