package io

// Document is the decoded form of a well description file.
type Document struct {
	Name     string    `toml:"name"`
	KOP      *float64  `toml:"kop,omitempty"`
	Mudline  *float64  `toml:"mudline,omitempty"`
	View     View      `toml:"view"`
	Tubulars []Tubular `toml:"tubular"`
	Tubing   *Tubular  `toml:"tubing,omitempty"`
	Cements  []Cement  `toml:"cement,omitempty"`
	Packers  []Packer  `toml:"packer,omitempty"`
}

// View holds layout overrides. Zero values mean "use the default".
type View struct {
	HorizontalStretch float64  `toml:"horizontal_stretch,omitzero"`
	VerticalStretch   float64  `toml:"vertical_stretch,omitzero"`
	Top               *float64 `toml:"top,omitempty"`
}

// Tubular describes a casing string or the tubing.
type Tubular struct {
	Name   string  `toml:"name"`
	ID     float64 `toml:"id"`
	OD     float64 `toml:"od"`
	Top    float64 `toml:"top"`
	Bottom float64 `toml:"bottom"`
	Weight float64 `toml:"weight,omitzero"`
	Shoe   float64 `toml:"shoe,omitzero"`
	Info   string  `toml:"info,omitempty"`
}

// Cement describes a cement job between two named strings.
type Cement struct {
	Top     float64  `toml:"top"`
	Bottom  float64  `toml:"bottom"`
	Between []string `toml:"between"`
}

// Packer describes a packer between two named strings.
type Packer struct {
	Depth  float64 `toml:"depth"`
	Inner  string  `toml:"inner"`
	Outer  string  `toml:"outer"`
	Kind   string  `toml:"kind,omitempty"`  // "tubing" (default) or "casing"
	Height float64 `toml:"height,omitzero"` // defaults to well.DefaultPackerHeight
}
