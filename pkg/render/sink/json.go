package sink

import (
	"encoding/json"

	"github.com/matzehuels/wellsketch/pkg/layout"
)

type jsonPlan struct {
	Title      string              `json:"title"`
	View       layout.View         `json:"view"`
	Counts     map[layout.Role]int `json:"counts"`
	Primitives []layout.Primitive  `json:"primitives"`
}

// RenderJSON exports the plan with a per-role tally.
func RenderJSON(p layout.Plan) ([]byte, error) {
	prims := p.Primitives
	if prims == nil {
		prims = []layout.Primitive{}
	}
	return json.MarshalIndent(jsonPlan{
		Title:      p.Title,
		View:       p.View,
		Counts:     p.Counts(),
		Primitives: prims,
	}, "", "  ")
}
