package tracker

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// LoadSnapshot reads the snapshot stored at path.
//
// A missing file is a first run and yields the default snapshot. A corrupted
// payload, a version mismatch or a state failing its coherence check all mean
// the stored data is not usable: the loader logs what it found and yields the
// default snapshot rather than failing. Only plain I/O errors surface.
func LoadSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Snapshot{State: DefaultState()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot file %q: %w", path, err)
	}
	defer f.Close()

	snap, err := DecodeSnapshot(f)
	if err != nil {
		log.Printf("snapshot %q holds no usable data (%v): starting from defaults", path, err)
		return &Snapshot{State: DefaultState()}, nil
	}
	if err := snap.State.Check(); err != nil {
		log.Printf("snapshot %q is not coherent (%v): starting from defaults", path, err)
		return &Snapshot{State: DefaultState()}, nil
	}
	return snap, nil
}

// SaveSnapshot writes the snapshot to path. The document is written to a
// temporary file first and renamed into place, so a crash mid-write never
// leaves a half-written snapshot behind.
func SaveSnapshot(path string, snap *Snapshot) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create snapshot directory %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary snapshot file: %w", err)
	}
	if err := EncodeSnapshot(tmp, snap); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not close temporary snapshot file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace snapshot file %q: %w", path, err)
	}
	return nil
}
