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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/flamestab/curve"
	"github.com/notargets/flamestab/plot"
)

// PeninsulaCmd represents the peninsula command
var PeninsulaCmd = &cobra.Command{
	Use:   "peninsula",
	Short: "Neutral stability curves Pe(n) per equivalence ratio",
	Long: `
Samples the dispersion relation Pe(n) on 100 wavenumbers between 7 and 120 for
every equivalence ratio and prints one "phi n Pe" line per sample.

flamestab peninsula -I case.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			d    *curve.Driver
			pens []curve.Peninsula
			out  = cmd.OutOrStdout()
		)
		ip, err := loadParameters(viper.GetString("peninsulaInput"))
		if err != nil {
			return
		}
		if d, err = newDriver(ip, viper.GetInt("workers"), slog.Default()); err != nil {
			return
		}
		if pens, err = d.Peninsulas(cmd.Context(), curve.PeninsulaWavenumbers()); err != nil {
			return
		}
		for _, pen := range pens {
			for i := range pen.N {
				fmt.Fprintf(out, "%5.2f %8.3f %12.3f\n", pen.Phi, pen.N[i], pen.Pe[i])
			}
		}
		if graph, _ := cmd.Flags().GetBool("graph"); graph {
			ls := plot.PeninsulaChart(pens)
			if ls.Empty() {
				return fmt.Errorf("no finite Pe(n) samples below %g to draw", plot.PeninsulaPeMax)
			}
			ls.Render(1024, 768)
			plot.Wait()
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(PeninsulaCmd)
	PeninsulaCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for the run parameters, built-in C3H8/NH3 case if empty")
	PeninsulaCmd.Flags().BoolP("graph", "g", false, "display the stability peninsulas")
	if err := viper.BindPFlag("peninsulaInput", PeninsulaCmd.Flags().Lookup("inputConditionsFile")); err != nil {
		panic(err)
	}
}
