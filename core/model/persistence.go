package model

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/YuminosukeSato/insurebench/pkg/errors"
)

// SaveGob writes v to path as a gob stream. Every I/O failure, including the
// final Close, is returned to the caller.
func SaveGob(v interface{}, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "model.SaveGob: create %s", path)
	}
	if err := gob.NewEncoder(file).Encode(v); err != nil {
		file.Close()
		return errors.Wrapf(err, "model.SaveGob: encode %s", path)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "model.SaveGob: close %s", path)
	}
	return nil
}

// LoadGob reads a gob stream from path into v, which must be a pointer.
func LoadGob(v interface{}, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "model.LoadGob: open %s", path)
	}
	defer file.Close()

	if err := gob.NewDecoder(file).Decode(v); err != nil {
		return errors.Wrapf(err, "model.LoadGob: decode %s", path)
	}
	return nil
}

// SaveGobTo writes v to an arbitrary writer.
func SaveGobTo(v interface{}, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(v); err != nil {
		return errors.Wrap(err, "model.SaveGobTo: encode")
	}
	return nil
}

// LoadGobFrom reads v from an arbitrary reader.
func LoadGobFrom(v interface{}, r io.Reader) error {
	if err := gob.NewDecoder(r).Decode(v); err != nil {
		return errors.Wrap(err, "model.LoadGobFrom: decode")
	}
	return nil
}
