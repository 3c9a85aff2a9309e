package planner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/danieljhkim/planner/internal/fsops"
	"github.com/danieljhkim/planner/internal/ident"
)

// Extension is the file extension of planner files, without the dot.
const Extension = "pln"

// FileName returns the file name of the planner called name.
func FileName(name string) string {
	return name + "." + Extension
}

// Path returns the location of the planner called name under dir.
func Path(dir, name string) string {
	return filepath.Join(dir, FileName(name))
}

// plannerFile is the on-disk form of a Planner. Pointer fields let the
// decoder tell a missing field apart from a zero value.
type plannerFile struct {
	Events      *[]eventRecord `json:"events"`
	IDGenerator *generatorFile `json:"id_generator"`
}

type eventRecord struct {
	Name *string   `json:"name"`
	Date *Date     `json:"date"`
	ID   *ident.ID `json:"id"`
}

type generatorFile struct {
	Current *ident.ID `json:"current"`
}

// Load reads the planner called name from dir. A missing file, or a path
// that is not a regular file, yields an empty planner; a file that cannot be read, decoded, or validated yields
// an error wrapping ErrLoad.
func Load(dir, name string) (*Planner, error) {
	return LoadFS(fsops.NewRealFS(), dir, name)
}

// LoadFS is Load over an explicit filesystem.
func LoadFS(fs fsops.FS, dir, name string) (*Planner, error) {
	if err := fs.ValidateIdentifier(name); err != nil {
		return nil, fmt.Errorf("%w: invalid planner name: %w", ErrLoad, err)
	}

	path := Path(dir, name)
	isFile, err := fs.IsFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat planner file: %w", ErrLoad, err)
	}
	if !isFile {
		return New(), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("%w: failed to read planner file: %w", ErrLoad, err)
	}

	p, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, name, err)
	}
	return p, nil
}

// Save writes the planner to dir under name, replacing any existing file.
// Failures wrap ErrSave.
func (p *Planner) Save(dir, name string) error {
	return p.SaveFS(fsops.NewRealFS(), dir, name)
}

// SaveFS is Save over an explicit filesystem.
func (p *Planner) SaveFS(fs fsops.FS, dir, name string) error {
	if err := fs.ValidateIdentifier(name); err != nil {
		return fmt.Errorf("%w: invalid planner name: %w", ErrSave, err)
	}

	data, err := p.Encode()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	if err := fs.AtomicWrite(Path(dir, name), data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write planner file: %w", ErrSave, err)
	}
	return nil
}

// Encode serializes the planner into its file format.
func (p *Planner) Encode() ([]byte, error) {
	events := make([]eventRecord, len(p.events))
	for i := range p.events {
		e := &p.events[i]
		events[i] = eventRecord{Name: &e.Name, Date: &e.Date, ID: &e.ID}
	}
	current := p.ids.Current()

	data, err := json.MarshalIndent(plannerFile{
		Events:      &events,
		IDGenerator: &generatorFile{Current: &current},
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal planner: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a planner file. Unknown fields, missing fields, trailing
// data, and invariant violations are all rejected.
func Decode(data []byte) (*Planner, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var f plannerFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal planner file: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after planner object")
	}

	if f.Events == nil {
		return nil, errors.New(`missing field "events"`)
	}
	if f.IDGenerator == nil || f.IDGenerator.Current == nil {
		return nil, errors.New(`missing field "id_generator.current"`)
	}

	events := make([]Event, 0, len(*f.Events))
	for i, r := range *f.Events {
		if r.Name == nil || r.Date == nil || r.ID == nil {
			return nil, fmt.Errorf("event %d: missing name, date, or id", i)
		}
		events = append(events, Event{Name: *r.Name, Date: *r.Date, ID: *r.ID})
	}

	p := &Planner{events: events, ids: ident.Resume(*f.IDGenerator.Current)}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid planner: %w", err)
	}
	return p, nil
}
