// Package dataset loads the entity table and holds it as an immutable store.
package dataset

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/sells-group/stemmap/internal/fetcher"
	"github.com/sells-group/stemmap/internal/model"
)

// versionNamespace scopes content-derived dataset versions.
var versionNamespace = uuid.MustParse("6f1c2a4e-93b5-4d7e-8a21-5c0b9e3d7f14")

// Store is the loaded dataset. It is never modified after construction and
// is safe for concurrent use.
type Store struct {
	records    []model.Entity
	categories []string
	version    string
}

// FromTable validates every row of t and builds a Store, assigning colors by
// row position. Any invalid row fails the whole load.
func FromTable(t *fetcher.Table, palette []string) (*Store, error) {
	if t == nil {
		return nil, eris.New("dataset: nil table")
	}
	if len(palette) == 0 {
		return nil, eris.New("dataset: palette is empty")
	}

	cols, err := mapColumns(t.Header)
	if err != nil {
		return nil, err
	}

	records := make([]model.Entity, 0, len(t.Rows))
	for i, row := range t.Rows {
		if isBlankRow(row) {
			continue
		}
		e, err := parseRow(cols, row)
		if err != nil {
			// Rows are numbered as a spreadsheet would show them, header = 1.
			return nil, eris.Wrapf(err, "dataset: row %d", i+2)
		}
		e.Color = ColorAt(palette, len(records))
		records = append(records, e)
	}

	return newStore(records)
}

func newStore(records []model.Entity) (*Store, error) {
	s := &Store{records: records}

	seen := make(map[string]bool)
	for _, r := range records {
		if !seen[r.Category] {
			seen[r.Category] = true
			s.categories = append(s.categories, r.Category)
		}
	}

	canonical, err := json.Marshal(records)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: encode records for version")
	}
	s.version = uuid.NewSHA1(versionNamespace, canonical).String()
	return s, nil
}

func parseRow(cols columnMap, row []string) (model.Entity, error) {
	e := model.Entity{
		Name:        cols.cell(row, FieldName),
		Category:    cols.cell(row, FieldCategory),
		Institution: cols.cell(row, FieldInstitution),
		Achievement: cols.cell(row, FieldAchievement),
		Contact:     cols.cell(row, FieldContact),
	}
	if e.Name == "" {
		return e, eris.New("name is required")
	}
	if e.Category == "" {
		return e, eris.Errorf("%q: category is required", e.Name)
	}

	lat, err := parseCoord(cols.cell(row, FieldLatitude), 90)
	if err != nil {
		return e, eris.Wrapf(err, "%q: latitude", e.Name)
	}
	e.Latitude = lat

	// A missing or blank longitude is treated as 0.
	if raw := cols.cell(row, FieldLongitude); raw != "" {
		lon, err := parseCoord(raw, 180)
		if err != nil {
			return e, eris.Wrapf(err, "%q: longitude", e.Name)
		}
		e.Longitude = lon
	}
	return e, nil
}

func parseCoord(raw string, limit float64) (float64, error) {
	if raw == "" {
		return 0, eris.New("value is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, eris.Errorf("%q is not a number", raw)
	}
	if v < -limit || v > limit {
		return 0, eris.Errorf("%v out of range [-%v, %v]", v, limit, limit)
	}
	return v, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns a copy of all records in load order.
func (s *Store) Records() []model.Entity {
	out := make([]model.Entity, len(s.records))
	copy(out, s.records)
	return out
}

// Select returns copies of the records at the given positions, in that order.
func (s *Store) Select(indices []int) []model.Entity {
	out := make([]model.Entity, 0, len(indices))
	for _, i := range indices {
		out = append(out, s.records[i])
	}
	return out
}

// MatchCategory returns the positions of records whose category equals
// category exactly, in load order.
func (s *Store) MatchCategory(category string) []int {
	var out []int
	for i, r := range s.records {
		if r.Category == category {
			out = append(out, i)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (s *Store) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// Version identifies the loaded content. The same rows in the same order
// always produce the same version.
func (s *Store) Version() string {
	return s.version
}
