package sink

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/wellsketch/pkg/layout"
)

func TestRenderJSON(t *testing.T) {
	plan := testPlan(t)
	data, err := RenderJSON(plan)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var got struct {
		Title      string         `json:"title"`
		View       layout.View    `json:"view"`
		Counts     map[string]int `json:"counts"`
		Primitives []struct {
			Kind  string `json:"kind"`
			Role  string `json:"role"`
			Layer int    `json:"layer"`
		} `json:"primitives"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.Title != plan.Title {
		t.Errorf("title = %q, want %q", got.Title, plan.Title)
	}
	if got.View != plan.View {
		t.Errorf("view = %+v, want %+v", got.View, plan.View)
	}
	if len(got.Primitives) != len(plan.Primitives) {
		t.Errorf("len(primitives) = %d, want %d", len(got.Primitives), len(plan.Primitives))
	}
	if got.Counts["wall"] != 4 {
		t.Errorf("counts[wall] = %d, want 4", got.Counts["wall"])
	}
	if got.Primitives[0].Role != "reference" || got.Primitives[0].Kind != "line" {
		t.Errorf("first primitive = %+v, want reference line", got.Primitives[0])
	}
}

func TestRenderJSONEmptyPlan(t *testing.T) {
	data, err := RenderJSON(layout.Plan{})
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if prims, ok := got["primitives"].([]any); !ok || len(prims) != 0 {
		t.Errorf("primitives = %v, want empty array", got["primitives"])
	}
}
