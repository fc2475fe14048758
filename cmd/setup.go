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
	"os"

	"github.com/notargets/flamestab/InputParameters"
	"github.com/notargets/flamestab/curve"
	"github.com/notargets/flamestab/optim"
	"github.com/notargets/flamestab/stability"
	"github.com/notargets/flamestab/thermo"
)

// loadParameters starts from the built-in case and overlays the input file,
// when one is given.
func loadParameters(icFile string) (ip *InputParameters.StabilityParameters, err error) {
	var data []byte
	ip = InputParameters.NewStabilityParameters()
	if len(icFile) == 0 {
		return
	}
	if data, err = os.ReadFile(icFile); err != nil {
		return
	}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("input file %s: %w", icFile, err)
	}
	return
}

func newSampler(ip *InputParameters.StabilityParameters) (ms *stability.MixtureSampler, err error) {
	var (
		fuel, oxidizer thermo.Composition
		ea             stability.ActivationEnergy
	)
	if fuel, err = thermo.ParseComposition(ip.Fuel); err != nil {
		return
	}
	if oxidizer, err = thermo.ParseComposition(ip.Oxidizer); err != nil {
		return
	}
	if ip.DensityDerivative > 0 {
		ea = stability.DensityDerivativeActivationEnergy{DT: ip.DensityDerivative}
	} else {
		ea = stability.FixedActivationEnergy(ip.ActivationEnergy)
	}
	ms = stability.NewMixtureSampler(fuel, oxidizer, ea)
	return
}

func newDriver(ip *InputParameters.StabilityParameters, workers int, logger *slog.Logger) (d *curve.Driver, err error) {
	var (
		cfg       curve.Config
		prototype = thermo.NewIdealGas(thermo.ReferenceMechanism()) // never mutated, workers clone it
	)
	if cfg.Cases, err = curve.NewCases(ip.EquivalenceRatios, ip.LewisNumbers); err != nil {
		return
	}
	if cfg.Sampler, err = newSampler(ip); err != nil {
		return
	}
	if cfg.Method, err = optim.MethodByName(ip.Search.Method); err != nil {
		return
	}
	cfg.T, cfg.P, cfg.Pr = ip.Temperature, ip.Pressure, ip.Prandtl
	cfg.Search = optim.Settings{
		Lower:          ip.Search.Lower,
		Upper:          ip.Search.Upper,
		X0:             ip.Search.InitialGuess,
		XTol:           ip.Search.Tolerance,
		MaxEvaluations: ip.Search.MaxIterations,
	}
	cfg.Workers = workers
	cfg.Logger = logger
	cfg.NewBackend = func() thermo.Backend { return prototype.Clone() }
	return curve.NewDriver(cfg)
}
