// Package config loads peeling run settings from YAML.
//
// Example file:
//
//	threshold: 3
//	max_priority: 8
//	strategy: bucket        # bucket | heap
//	connectivity: moore     # moore | orthogonal
//	log_level: INFO         # DEBUG | INFO | WARN | ERROR
//
// Unknown keys are rejected. Omitted keys keep the values from Default.
// A max_priority of -1 (the default) lets the engine derive the bound from the grid.
package config
