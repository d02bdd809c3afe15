package io

// Sample returns the five-string demonstration well with its three cement
// jobs, a tubing string and a production packer.
func Sample() *Document {
	kop := 5000.0
	return &Document{
		Name: "Test Well 001",
		KOP:  &kop,
		Tubulars: []Tubular{
			{Name: "conductor", ID: 7.25, OD: 8, Top: 0, Bottom: 250, Weight: 58},
			{Name: "surface", ID: 6.25, OD: 6.75, Top: 0, Bottom: 2000, Weight: 47},
			{Name: "intermediate", ID: 5.5, OD: 5.75, Top: 0, Bottom: 3750, Weight: 39, Info: "this is very expensive!"},
			{Name: "production", ID: 4.75, OD: 5, Top: 0, Bottom: 5200, Weight: 39},
			{Name: "liner", ID: 3.75, OD: 4, Top: 4800, Bottom: 6500, Weight: 27},
		},
		Tubing: &Tubular{Name: "tubing", ID: 2.992, OD: 3.5, Top: 0, Bottom: 4700, Weight: 9.3},
		Cements: []Cement{
			{Top: 100, Bottom: 2000, Between: []string{"conductor", "surface"}},
			{Top: 1800, Bottom: 3750, Between: []string{"surface", "intermediate"}},
			{Top: 3500, Bottom: 5200, Between: []string{"intermediate", "production"}},
		},
		Packers: []Packer{
			{Depth: 4600, Inner: "tubing", Outer: "production", Kind: "tubing"},
		},
	}
}
