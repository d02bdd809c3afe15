package io

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wellsketch/pkg/well"
)

// WriteTOML encodes the document to w.
func WriteTOML(d *Document, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportTOML writes the document to a file at path.
func ExportTOML(d *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteTOML(d, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FromWell describes a populated well. Cement and packer references use the
// names recorded when they were created.
func FromWell(w *well.Well) *Document {
	d := &Document{Name: w.Name}
	if v, ok := w.KOP(); ok {
		d.KOP = &v
	}
	if v, ok := w.Mudline(); ok {
		d.Mudline = &v
	}
	for _, t := range w.Tubulars() {
		d.Tubulars = append(d.Tubulars, tubularEntry(t))
	}
	if t, ok := w.Tubing(); ok {
		e := tubularEntry(t)
		d.Tubing = &e
	}
	for _, c := range w.Cements() {
		d.Cements = append(d.Cements, Cement{Top: c.Top, Bottom: c.Bottom, Between: []string{c.Outer, c.Inner}})
	}
	for _, p := range w.Packers() {
		e := Packer{Depth: p.Depth, Inner: p.Inner, Outer: p.Outer, Kind: string(p.Kind)}
		if p.Height != well.DefaultPackerHeight {
			e.Height = p.Height
		}
		d.Packers = append(d.Packers, e)
	}
	return d
}

func tubularEntry(t well.Tubular) Tubular {
	return Tubular{
		Name:   t.Name,
		ID:     t.InnerDiameter,
		OD:     t.OuterDiameter,
		Top:    t.Top,
		Bottom: t.Bottom,
		Weight: t.UnitWeight,
		Shoe:   t.ShoeSize,
		Info:   t.Info,
	}
}
