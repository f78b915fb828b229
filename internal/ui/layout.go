package ui

import (
	"fmt"
	"strings"

	"gridsnake/internal/core"
)

type panelLine struct {
	text   string
	header bool
}

// panelLines flattens a parameter snapshot into the rows shown by the HUD.
func panelLines(snap core.ParameterSnapshot) []panelLine {
	var lines []panelLine
	for _, group := range snap.Groups {
		if len(group.Params) == 0 {
			continue
		}
		lines = append(lines, panelLine{text: group.Name, header: true})
		for _, param := range group.Params {
			label := param.Label
			if label == "" {
				label = param.Key
			}
			lines = append(lines, panelLine{text: fmt.Sprintf("%s: %s", label, param.Value)})
		}
	}
	return lines
}

func buildTitle(name string) string {
	if name == "" {
		return "Parameters"
	}
	return fmt.Sprintf("%s Parameters", strings.Title(name))
}

// centered returns the offset that centers a span of size inner inside outer.
func centered(inner, outer int) int {
	if inner >= outer {
		return 0
	}
	return (outer - inner) / 2
}

func scoreLine(score int) string {
	return fmt.Sprintf("Scores: %d", score)
}
