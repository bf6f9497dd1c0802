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
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/donicrosby/pps-tools/pps"
)

var capsCmd = &cobra.Command{
	Use:   "caps",
	Short: "Print the mode bits the PPS source supports",
	Run:   runCapsCmd,
}

func init() {
	RootCmd.AddCommand(capsCmd)
}

func runCapsCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()
	if err := printCaps(rootDeviceFlag); err != nil {
		log.Fatal(err)
	}
}

func printCaps(device string) error {
	dev, err := pps.Open(device)
	if err != nil {
		return err
	}
	defer dev.Close()

	caps, err := dev.GetCap()
	if err != nil {
		return fmt.Errorf("reading capabilities of %q: %w", device, err)
	}
	return renderCaps(os.Stdout, caps)
}

func renderCaps(w io.Writer, caps pps.CapabilityMap) error {
	table := tablewriter.NewWriter(w)
	table.Header("flag", "value", "supported")
	for _, bit := range pps.AllModeBits {
		table.Append([]string{
			bit.String(),
			fmt.Sprintf("0x%04x", int32(bit)),
			fmt.Sprintf("%v", caps[bit]),
		})
	}
	return table.Render()
}
