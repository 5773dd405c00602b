package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"tabular/internal/util/logx"
)

// LoadCSV reads a CSV dataset from r. The first row is the header. Rows
// shorter than the header are padded with blanks, longer ones truncated.
// Identity comes from idColumn when it names a header field, otherwise from
// the row ordinal (stable within one load of the dataset).
func LoadCSV(r io.Reader, name, idColumn string) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty input: no header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	useIDColumn := false
	for _, h := range header {
		if idColumn != "" && h == idColumn {
			useIDColumn = true
		}
	}
	warnDuplicateHeaders(name, header)
	d := &Dataset{Name: name, Header: header}
	if useIDColumn {
		d.IDColumn = idColumn
	}
	ordinal := 0
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", ordinal+1, err)
		}
		d.Records = append(d.Records, buildRecord(header, rec, d.IDColumn, ordinal))
		ordinal++
	}
	d.Kinds = SniffKinds(header, d.Records)
	return d, nil
}

// LoadCSVFile loads a CSV dataset from path.
func LoadCSVFile(path, idColumn string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadCSV(f, filepath.Base(path), idColumn)
}

// LoadCSVStdin loads a CSV dataset piped on stdin.
func LoadCSVStdin(idColumn string) (*Dataset, error) {
	return LoadCSV(os.Stdin, "stdin", idColumn)
}

// Repeated header names collapse into one field key, with the rightmost
// column winning. Reported, not fixed: renaming columns behind the user's
// back would be worse than the collision.
func warnDuplicateHeaders(name string, header []string) {
	counts := make(map[string]int, len(header))
	for _, h := range header {
		counts[h]++
	}
	for _, h := range header {
		if counts[h] > 1 {
			logx.Warnf("csv %s: header %q appears %d times; only the rightmost column is kept", name, h, counts[h])
			counts[h] = 0
		}
	}
}

func buildRecord(header, rec []string, idColumn string, ordinal int) Record {
	fields := make(map[string]string, len(header))
	for i, h := range header {
		if i < len(rec) {
			fields[h] = rec[i]
		} else {
			fields[h] = ""
		}
	}
	id := strconv.Itoa(ordinal)
	if idColumn != "" {
		if v, ok := fields[idColumn]; ok && v != "" {
			id = v
		}
	}
	return Record{ID: id, Fields: fields}
}
