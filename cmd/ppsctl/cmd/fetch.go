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
	fetchTimeout time.Duration
	fetchCount   int
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Wait for pulse edges and print their timestamps",
	Run:   runFetchCmd,
}

func init() {
	RootCmd.AddCommand(fetchCmd)
	flags := fetchCmd.Flags()
	flags.DurationVarP(&fetchTimeout, "timeout", "t", 0, "max time to wait for an edge, 0 means wait forever")
	flags.IntVarP(&fetchCount, "count", "n", 1, "number of events to fetch, 0 means no limit")
}

func runFetchCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()
	if err := fetchLoop(rootDeviceFlag, fetchTimeout, fetchCount); err != nil {
		log.Fatal(err)
	}
}

func fetchLoop(device string, timeout time.Duration, count int) error {
	dev, err := pps.Open(device)
	if err != nil {
		return err
	}
	defer dev.Close()

	for i := 0; count == 0 || i < count; i++ {
		info, err := dev.Fetch(timeout)
		if err != nil {
			return fmt.Errorf("fetching from %q: %w", device, err)
		}
		fmt.Printf("assert %d: %s  clear %d: %s\n",
			info.AssertSequence, formatTimeU(info.AssertTime),
			info.ClearSequence, formatTimeU(info.ClearTime),
		)
	}
	return nil
}
