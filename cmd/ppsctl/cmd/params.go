/*
Copyright (c) The pps-tools authors.

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
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/donicrosby/pps-tools/pps"
)

// flags
var (
	paramsCaptureAssert bool
	paramsCaptureClear  bool
	paramsAssertOffset  time.Duration
	paramsClearOffset   time.Duration
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Print current capture parameters, optionally setting new ones first",
	Run:   runParamsCmd,
}

func init() {
	RootCmd.AddCommand(paramsCmd)
	flags := paramsCmd.Flags()
	flags.BoolVarP(&paramsCaptureAssert, "capture-assert", "a", false, "capture assert (rising) edges")
	flags.BoolVarP(&paramsCaptureClear, "capture-clear", "c", false, "capture clear (falling) edges")
	flags.DurationVar(&paramsAssertOffset, "offset-assert", 0, "offset applied to assert timestamps")
	flags.DurationVar(&paramsClearOffset, "offset-clear", 0, "offset applied to clear timestamps")
}

func runParamsCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()
	if err := doParamsCmd(rootDeviceFlag); err != nil {
		log.Fatal(err)
	}
}

func doParamsCmd(device string) error {
	dev, err := pps.Open(device)
	if err != nil {
		return err
	}
	defer dev.Close()

	if paramsCaptureAssert || paramsCaptureClear {
		if err := setParams(dev); err != nil {
			return fmt.Errorf("setting parameters on %q: %w", device, err)
		}
	}

	params, err := dev.GetParams()
	if err != nil {
		return fmt.Errorf("reading parameters of %q: %w", device, err)
	}
	printParams(params)
	return nil
}

func setParams(dev *pps.Device) error {
	b := pps.NewModeBuilder().Add(pps.TsFmtTSpec)
	if paramsCaptureAssert {
		b.Add(pps.CaptureAssert)
	}
	if paramsCaptureClear {
		b.Add(pps.CaptureClear)
	}
	if paramsAssertOffset != 0 {
		b.Add(pps.OffsetAssert)
	}
	if paramsClearOffset != 0 {
		b.Add(pps.OffsetClear)
	}
	return dev.SetParams(pps.Params{
		APIVersion:   pps.DefaultAPIVersion,
		Mode:         b.Build(),
		AssertOffset: pps.FromDuration(paramsAssertOffset),
		ClearOffset:  pps.FromDuration(paramsClearOffset),
	})
}

func printParams(p pps.Params) {
	fmt.Printf("api version: %d\n", p.APIVersion)
	fmt.Printf("mode: 0x%04x\n", int32(p.Mode))
	for _, bit := range pps.AllModeBits {
		if p.Mode.IsSet(bit) {
			fmt.Printf("  %s\n", bit)
		}
	}
	fmt.Printf("assert offset: %s\n", formatTimeU(p.AssertOffset))
	fmt.Printf("clear offset: %s\n", formatTimeU(p.ClearOffset))
}

func formatTimeU(tu pps.TimeU) string {
	if tu == nil {
		tu = pps.TimeSpec{}
	}
	if fp, ok := tu.(pps.NTPFP); ok {
		return fp.String()
	}
	ts := tu.Timespec()
	return fmt.Sprintf("%d.%09ds", ts.Sec, ts.Nsec)
}
