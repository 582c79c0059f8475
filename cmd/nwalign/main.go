// SPDX-License-Identifier: MIT

// Command nwalign aligns string pairs globally with a linear gap penalty.
//
//	nwalign align CRANE RAIN
//	nwalign demo
//	nwalign batch pairs.yaml --workers 4
package main

import (
	"os"

	"github.com/katalvlaran/nwalign/internal/cli"
)

func main() {
	// cli logs the failure itself, in the configured log format.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
