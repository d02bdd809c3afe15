package sink

import (
	"testing"

	"github.com/matzehuels/wellsketch/pkg/layout"
	"github.com/matzehuels/wellsketch/pkg/well"
)

// testWell builds a two-string well with a cement job, tubing and a packer.
func testWell(t *testing.T) *well.Well {
	t.Helper()
	w := well.New("Test <Well> & Co", well.WithKOP(1500))
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}

	conductor, err := well.NewTubular("conductor", 7.25, 8, 0, 250, well.WithUnitWeight(58))
	must(err)
	surface, err := well.NewTubular("surface", 6.25, 6.75, 0, 2000, well.WithUnitWeight(47), well.WithShoe(7))
	must(err)
	tubing, err := well.NewTubing("tubing", 2.992, 3.5, 0, 1900)
	must(err)
	must(w.AddTubular(conductor))
	must(w.AddTubular(surface))
	must(w.AddTubular(tubing))

	c, err := well.NewCement(100, 2000, conductor, surface)
	must(err)
	_, err = w.AddCement(c)
	must(err)

	p, err := well.NewPacker(1800, tubing, surface, well.PackerTubing)
	must(err)
	must(w.AddPacker(p))
	return w
}

func testPlan(t *testing.T) layout.Plan {
	t.Helper()
	p, err := layout.Build(testWell(t))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return p
}
