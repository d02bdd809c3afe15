package layout_test

import (
	"fmt"

	"github.com/matzehuels/wellsketch/pkg/layout"
	"github.com/matzehuels/wellsketch/pkg/well"
)

func ExampleBuild() {
	w := well.New("single string")
	surface, _ := well.NewTubular("surface", 6.25, 6.75, 0, 2000, well.WithShoe(7))
	_ = w.AddTubular(surface)

	plan, err := layout.Build(w, layout.WithoutLabels())
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("view x [%g, %g]\n", plan.View.MinX, plan.View.MaxX)
	for _, p := range plan.Primitives {
		fmt.Println(p.Layer, p.Role, p.Side)
	}
	// Output:
	// view x [-27, 27]
	// 2 wall 1
	// 2 wall -1
	// 3 shoe 1
	// 3 shoe -1
}
