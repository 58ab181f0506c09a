// Package metrics provides metric collector implementations for the
// assignment engine.
package metrics

import "github.com/vigneshprasad96/digital-xc-assignment/types"

// NopCollector is a no-op metrics collector that discards all observations.
type NopCollector struct{}

// Compile-time assertion that NopCollector implements MetricsCollector.
var _ types.MetricsCollector = (*NopCollector)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopCollector: Collector that performs no operations
func NewNop() *NopCollector {
	return &NopCollector{}
}

// RecordGenerateDuration discards the observation.
func (n *NopCollector) RecordGenerateDuration(_ /* duration */ float64, _ /* outcome */ string) {}

// RecordShuffleAttempts discards the observation.
func (n *NopCollector) RecordShuffleAttempts(_ /* attempts */ int) {}

// RecordMatchingFallback discards the observation.
func (n *NopCollector) RecordMatchingFallback() {}
