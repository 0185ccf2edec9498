package grid

import "fmt"

// Tool is the measurement overlay drawn above the background grid.
type Tool string

const (
	ToolNone        Tool = "none"
	ToolProtractor  Tool = "protractor"
	ToolRulerInches Tool = "ruler-inches"
	ToolRulerMm     Tool = "ruler-mm"
	ToolHardware    Tool = "hardware"
)

// Tools lists the overlay tools in menu order.
var Tools = []Tool{ToolNone, ToolProtractor, ToolRulerInches, ToolRulerMm, ToolHardware}

// ParseTool validates a tool name.
func ParseTool(s string) (Tool, error) {
	for _, t := range Tools {
		if string(t) == s {
			return t, nil
		}
	}
	return ToolNone, fmt.Errorf("grid: unknown overlay tool %q", s)
}
