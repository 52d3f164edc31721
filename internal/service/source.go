package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Row is one raw value from a Source. Position is 1-based.
type Row struct {
	Position int
	Raw      string
}

// Source yields raw postcode values for an import.
type Source interface {
	Name() string
	Each(ctx context.Context, fn func(Row) error) error
}

// CSVSource reads one column of a CSV stream. Empty records are skipped and
// Position is the physical line the value starts on, blank lines included.
type CSVSource struct {
	name   string
	r      io.Reader
	column int
}

func NewCSVSource(name string, r io.Reader, column int) *CSVSource {
	return &CSVSource{name: name, r: r, column: column}
}

func (s *CSVSource) Name() string {
	return "csv:" + s.name
}

func (s *CSVSource) Each(ctx context.Context, fn func(Row) error) error {
	reader := csv.NewReader(s.r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: read %s: %v", ErrSourceUnavailable, s.Name(), err)
		}
		if isEmptyRecord(record) || s.column >= len(record) {
			continue
		}

		line, _ := reader.FieldPos(s.column)
		if err := fn(Row{Position: line, Raw: strings.TrimSpace(record[s.column])}); err != nil {
			return err
		}
	}
}

func isEmptyRecord(record []string) bool {
	return len(record) == 0 || (len(record) == 1 && strings.TrimSpace(record[0]) == "")
}

// RawReader streams nullable values, e.g. a database column.
type RawReader interface {
	Name() string
	EachRaw(ctx context.Context, fn func(value *string) error) error
}

// DBSource adapts a RawReader. NULL values are skipped but still advance
// Position.
type DBSource struct {
	reader RawReader
}

func NewDBSource(reader RawReader) *DBSource {
	return &DBSource{reader: reader}
}

func (s *DBSource) Name() string {
	return s.reader.Name()
}

func (s *DBSource) Each(ctx context.Context, fn func(Row) error) error {
	pos := 0
	err := s.reader.EachRaw(ctx, func(value *string) error {
		pos++
		if value == nil {
			return nil
		}
		return fn(Row{Position: pos, Raw: *value})
	})
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return err
}
