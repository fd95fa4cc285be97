// Package excelpreview loads workbooks and delimited text files into cell
// matrices for previewing.
package excelpreview

import "fmt"

// Mode represents the extraction mode.
type Mode string

const (
	// ModeLight extracts cells only.
	ModeLight Mode = "light"
	// ModeStandard extracts cells, defined tables and table candidates.
	ModeStandard Mode = "standard"
	// ModeVerbose extracts everything standard does plus print areas.
	ModeVerbose Mode = "verbose"
)

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeLight, ModeStandard, ModeVerbose:
		return m, nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", s)
	}
}

// Options configures extraction behavior.
type Options struct {
	// Mode specifies the extraction mode (light, standard, verbose).
	Mode Mode
	// IncludeTables specifies whether to look for tables.
	// If nil, defaults to false for light mode, true otherwise.
	IncludeTables *bool
	// IncludePrintAreas specifies whether to include print areas.
	// If nil, defaults to true for verbose mode, false otherwise.
	IncludePrintAreas *bool
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldIncludeTables returns whether to detect tables.
func (o Options) ShouldIncludeTables() bool {
	if o.IncludeTables != nil {
		return *o.IncludeTables
	}
	return o.Mode != ModeLight
}

// ShouldIncludePrintAreas returns whether to include print areas.
func (o Options) ShouldIncludePrintAreas() bool {
	if o.IncludePrintAreas != nil {
		return *o.IncludePrintAreas
	}
	return o.Mode == ModeVerbose
}
