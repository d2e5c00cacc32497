package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// ReadJSON decodes a JSON array of flat objects into a Table. Headers are the
// union of keys in first-seen order; scalar values are rendered as text and
// null or missing values become "".
func ReadJSON(ctx context.Context, r io.Reader) (*Table, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	tok, err := decoder.Token()
	if err != nil {
		return nil, eris.Wrap(err, "json: read opening token")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, eris.Errorf("json: expected '[', got %v", tok)
	}

	var objects []map[string]any
	var header []string
	index := make(map[string]int)

	for decoder.More() {
		if ctx.Err() != nil {
			return nil, eris.Wrap(ctx.Err(), "json: context cancelled")
		}

		// Decode the element to preserve key order for new headers.
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			return nil, eris.Wrap(err, "json: decode element")
		}
		keys, err := objectKeys(raw)
		if err != nil {
			return nil, eris.Wrapf(err, "json: element %d", len(objects))
		}
		var obj map[string]any
		objDec := json.NewDecoder(bytes.NewReader(raw))
		objDec.UseNumber()
		if err := objDec.Decode(&obj); err != nil {
			return nil, eris.Wrapf(err, "json: element %d", len(objects))
		}

		for _, k := range keys {
			name := strings.TrimSpace(k)
			if _, ok := index[name]; !ok {
				index[name] = len(header)
				header = append(header, name)
			}
		}
		objects = append(objects, obj)
	}

	if _, err := decoder.Token(); err != nil && err != io.EOF {
		return nil, eris.Wrap(err, "json: read closing token")
	}

	t := &Table{Header: header, Rows: make([][]string, 0, len(objects))}
	for _, obj := range objects {
		row := make([]string, len(header))
		for k, v := range obj {
			row[index[strings.TrimSpace(k)]] = scalarString(v)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// objectKeys returns the keys of a JSON object in document order.
func objectKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, eris.Errorf("expected object, got %v", tok)
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, eris.Errorf("unexpected key token %v", tok)
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func scalarString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case json.Number:
		return x.String()
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(x)
	}
}
