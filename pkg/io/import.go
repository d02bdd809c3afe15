package io

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wellsketch/pkg/errors"
	"github.com/matzehuels/wellsketch/pkg/well"
)

// ReadTOML decodes a well description from r. Unknown keys are rejected so
// typos such as "botom" do not silently drop a value. ReadTOML does not
// close r.
func ReadTOML(r io.Reader) (*Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode well file")
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown key %q", undec[0].String())
	}
	return &doc, nil
}

// ImportTOML reads the well description file at path.
func ImportTOML(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadTOML(f)
}

// Build creates and populates a well from the document.
func (d *Document) Build() (*well.Well, error) {
	var opts []well.Option
	if d.KOP != nil {
		opts = append(opts, well.WithKOP(*d.KOP))
	}
	if d.Mudline != nil {
		opts = append(opts, well.WithMudline(*d.Mudline))
	}
	w := well.New(d.Name, opts...)

	for i, t := range d.Tubulars {
		tb, err := well.NewTubular(t.Name, t.ID, t.OD, t.Top, t.Bottom, t.options()...)
		if err == nil {
			err = w.AddTubular(tb)
		}
		if err != nil {
			return nil, entryError(err, "tubular %d (%s)", i, t.Name)
		}
	}
	if t := d.Tubing; t != nil {
		tb, err := well.NewTubing(t.Name, t.ID, t.OD, t.Top, t.Bottom, t.options()...)
		if err == nil {
			err = w.AddTubular(tb)
		}
		if err != nil {
			return nil, entryError(err, "tubing (%s)", t.Name)
		}
	}

	for i, c := range d.Cements {
		if len(c.Between) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "cement %d: between needs exactly two names, got %d", i, len(c.Between))
		}
		a, err := lookup(w, c.Between[0])
		if err != nil {
			return nil, entryError(err, "cement %d", i)
		}
		b, err := lookup(w, c.Between[1])
		if err != nil {
			return nil, entryError(err, "cement %d", i)
		}
		cem, err := well.NewCement(c.Top, c.Bottom, a, b)
		if err == nil {
			_, err = w.AddCement(cem)
		}
		if err != nil {
			return nil, entryError(err, "cement %d", i)
		}
	}

	for i, p := range d.Packers {
		if err := addPacker(w, p); err != nil {
			return nil, entryError(err, "packer %d", i)
		}
	}
	return w, nil
}

func (t Tubular) options() []well.TubularOption {
	opts := []well.TubularOption{well.WithUnitWeight(t.Weight)}
	if t.Shoe != 0 {
		opts = append(opts, well.WithShoe(t.Shoe))
	}
	if t.Info != "" {
		opts = append(opts, well.WithInfo(t.Info))
	}
	return opts
}

func addPacker(w *well.Well, p Packer) error {
	kind := well.PackerTubing
	if p.Kind != "" {
		k, err := well.ParsePackerKind(p.Kind)
		if err != nil {
			return err
		}
		kind = k
	}
	inner, err := lookup(w, p.Inner)
	if err != nil {
		return err
	}
	outer, err := lookup(w, p.Outer)
	if err != nil {
		return err
	}
	var opts []well.PackerOption
	if p.Height != 0 {
		opts = append(opts, well.WithPackerHeight(p.Height))
	}
	pk, err := well.NewPacker(p.Depth, inner, outer, kind, opts...)
	if err != nil {
		return err
	}
	return w.AddPacker(pk)
}

func lookup(w *well.Well, name string) (well.Tubular, error) {
	t, ok := w.Tubular(name)
	if !ok {
		return well.Tubular{}, errors.New(errors.ErrCodeInvalidInput, "unknown tubular %q", name)
	}
	return t, nil
}

// entryError prefixes err with the failing entry while keeping its code.
func entryError(err error, format string, args ...any) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInvalidInput
	}
	return errors.Wrap(code, err, format, args...)
}
