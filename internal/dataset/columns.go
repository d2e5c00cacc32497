package dataset

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Field identifies a logical dataset column.
type Field int

const (
	FieldName Field = iota
	FieldCategory
	FieldInstitution
	FieldAchievement
	FieldContact
	FieldLatitude
	FieldLongitude
)

var fieldNames = map[Field]string{
	FieldName:        "name",
	FieldCategory:    "category",
	FieldInstitution: "institution",
	FieldAchievement: "achievement",
	FieldContact:     "contact",
	FieldLatitude:    "latitude",
	FieldLongitude:   "longitude",
}

func (f Field) String() string {
	return fieldNames[f]
}

// headerAliases lists accepted header spellings per field: the Spanish headers
// of the published spreadsheet first, then English names.
var headerAliases = map[Field][]string{
	FieldName:        {"Nombre", "name"},
	FieldCategory:    {"Campo STEM", "category", "field"},
	FieldInstitution: {"Institución", "institution"},
	FieldAchievement: {"Destacado", "achievement"},
	FieldContact:     {"Contacto (página personal, otros)", "Contacto", "contact"},
	FieldLatitude:    {"Latitud", "latitude", "lat"},
	FieldLongitude:   {"Longitud", "longitude", "lon", "lng"},
}

var requiredFields = []Field{FieldName, FieldCategory, FieldLatitude}

// normalizeHeader trims, NFC-normalizes, and case-folds a header cell so that
// "Institución" typed with a combining accent still matches.
func normalizeHeader(h string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(h)))
}

var aliasIndex = func() map[string]Field {
	idx := make(map[string]Field)
	for f, names := range headerAliases {
		for _, n := range names {
			idx[normalizeHeader(n)] = f
		}
	}
	return idx
}()

// columnMap maps each recognised field to its column position.
type columnMap map[Field]int

// mapColumns resolves header cells to fields. The first matching column wins;
// unrecognised columns are ignored.
func mapColumns(header []string) (columnMap, error) {
	cols := make(columnMap)
	for i, h := range header {
		f, ok := aliasIndex[normalizeHeader(h)]
		if !ok {
			continue
		}
		if _, dup := cols[f]; !dup {
			cols[f] = i
		}
	}

	var missing []string
	for _, f := range requiredFields {
		if _, ok := cols[f]; !ok {
			missing = append(missing, f.String())
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, eris.Errorf("dataset: missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// cell returns the trimmed value of field f in row, or "" when the column is
// absent or the row is short.
func (c columnMap) cell(row []string, f Field) string {
	i, ok := c[f]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (c columnMap) has(f Field) bool {
	_, ok := c[f]
	return ok
}
