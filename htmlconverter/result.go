package htmlconverter

import "github.com/rgonek/html-delta-converter/delta"

// Result holds the output of a conversion.
type Result struct {
	Ops      []delta.Op      `json:"ops"`
	Warnings []delta.Warning `json:"warnings,omitempty"`
}
