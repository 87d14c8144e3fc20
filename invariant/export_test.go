// SPDX-License-Identifier: MIT

package invariant

// Test bridge for unexported state.

// IntegrateCalls reports how many integrations c has run.
func IntegrateCalls(c *Calculator) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.integrations
}

// ExportedBinWidths exposes binWidths.
var ExportedBinWidths = binWidths
