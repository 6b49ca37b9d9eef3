// Package dataset loads the three canonical collections (hotel records,
// source records, and unstructured chunks) from JSON fixtures and serves
// them as an immutable catalog.
package dataset

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/ujv-group/hotel-brief-cli/internal/model"
)

// Catalog is the read-only canonical dataset for brief generation.
// It is loaded once and never mutated afterwards.
type Catalog struct {
	hotels  map[string]model.Hotel
	sources map[string]model.Source
	chunks  []model.Chunk
}

// NewCatalog builds a catalog from already-parsed collections.
func NewCatalog(hotels []model.Hotel, sources []model.Source, chunks []model.Chunk) *Catalog {
	c := &Catalog{
		hotels:  make(map[string]model.Hotel, len(hotels)),
		sources: make(map[string]model.Source, len(sources)),
		chunks:  chunks,
	}
	for _, h := range hotels {
		c.hotels[h.ID] = h
	}
	for _, s := range sources {
		c.sources[s.ID] = s
	}
	return c
}

// Load reads the three JSON collections from disk.
func Load(hotelsPath, sourcesPath, chunksPath string) (*Catalog, error) {
	var hotels []model.Hotel
	if err := readJSON(hotelsPath, &hotels); err != nil {
		return nil, eris.Wrap(err, "dataset: load hotels")
	}

	var sources []model.Source
	if err := readJSON(sourcesPath, &sources); err != nil {
		return nil, eris.Wrap(err, "dataset: load sources")
	}

	var chunks []model.Chunk
	if err := readJSON(chunksPath, &chunks); err != nil {
		return nil, eris.Wrap(err, "dataset: load chunks")
	}

	return NewCatalog(hotels, sources, chunks), nil
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrapf(err, "read %s", path)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return eris.Wrapf(err, "unmarshal %s", path)
	}
	return nil
}

// HotelByID returns the canonical record for the given hotel, or a
// NotFoundError when no record exists.
func (c *Catalog) HotelByID(id string) (model.Hotel, error) {
	h, ok := c.hotels[id]
	if !ok {
		return model.Hotel{}, model.NewNotFoundError("hotel", id)
	}
	return h, nil
}

// SourceByID returns the source record for the given id. Unresolvable
// ids are not errors; callers drop them silently.
func (c *Catalog) SourceByID(id string) (model.Source, bool) {
	s, ok := c.sources[id]
	return s, ok
}

// Chunks returns the full chunk pool.
func (c *Catalog) Chunks() []model.Chunk {
	return c.chunks
}
