package chart

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/chart/date"
)

// This file contains code to read series from the files the data providing
// side exports, and to write them back as JSONL.
//
// The JSONL format is one sample per line, blank lines are ignored:
//
//	{"on":"2025-01-02","value":1250.5}
//	{"on":"2025-01-03","value":1262,"interpolated":true}
//
// Decoders always return a chronological series: out of order samples are
// sorted (stable) and reported in the log.

// jsample is the object read from, and written to, a JSONL line.
type jsample struct {
	On           date.Date `json:"on"`
	Value        *float64  `json:"value"`
	Interpolated bool      `json:"interpolated,omitempty"`
}

// DecodeSeries decodes a JSONL series. filename is for error message only.
func DecodeSeries(r io.Reader, filename string) (Series, error) {
	var s Series
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var js jsample
		if err := json.Unmarshal(line, &js); err != nil {
			return nil, fmt.Errorf("parse error %s:%v: not a correct sample: %w", filename, i, err)
		}
		if js.On.IsZero() {
			return nil, fmt.Errorf("parse error %s:%v: missing the property %q with a date", filename, i, "on")
		}
		if js.Value == nil {
			return nil, fmt.Errorf("parse error %s:%v: missing the property %q with a number", filename, i, "value")
		}
		s = append(s, Sample{On: js.On, Value: *js.Value, Interpolated: js.Interpolated})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}
	return chronological(s, filename), nil
}

// EncodeSeries writes s as JSONL.
func EncodeSeries(w io.Writer, s Series) error {
	enc := json.NewEncoder(w)
	for _, sample := range s {
		v := sample.Value
		if err := enc.Encode(jsample{On: sample.On, Value: &v, Interpolated: sample.Interpolated}); err != nil {
			return fmt.Errorf("cannot encode sample %v: %w", sample.On, err)
		}
	}
	return nil
}

// DecodeCSV decodes a series from CSV records "date,value[,interpolated]".
// A first record whose value is not a number is skipped as a header.
func DecodeCSV(r io.Reader, filename string) (Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var s Series
	for i := 1; ; i++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse error %s:%v: %w", filename, i, err)
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("parse error %s:%v: want at least 2 fields got %d", filename, i, len(record))
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			if i == 1 {
				continue // header
			}
			return nil, fmt.Errorf("parse error %s:%v: invalid value %q: %w", filename, i, record[1], err)
		}
		if !finite(value) {
			return nil, fmt.Errorf("parse error %s:%v: value %q is not a finite number", filename, i, record[1])
		}
		on, err := date.Parse(record[0])
		if err != nil {
			return nil, fmt.Errorf("parse error %s:%v: %w", filename, i, err)
		}
		sample := Sample{On: on, Value: value}
		if len(record) > 2 && strings.TrimSpace(record[2]) != "" {
			if sample.Interpolated, err = strconv.ParseBool(strings.TrimSpace(record[2])); err != nil {
				return nil, fmt.Errorf("parse error %s:%v: invalid interpolated flag %q: %w", filename, i, record[2], err)
			}
		}
		s = append(s, sample)
	}
	return chronological(s, filename), nil
}

// DecodeJSONPath decodes a series from any JSON document. path is a jsonpath
// expression selecting a list of samples, each one being either a
// [date, value] pair or an object with "on" (or "date"), "value" and optional
// "interpolated" properties.
func DecodeJSONPath(r io.Reader, path, filename string) (Series, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("parse error %s: not a correct json: %w", filename, err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("parse error %s: %q: %w", filename, path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("parse error %s: %q does not select a list but %T", filename, path, jval)
	}

	s := make(Series, 0, len(jlist))
	for i, jitem := range jlist {
		sample, err := decodeJSONSample(jitem)
		if err != nil {
			return nil, fmt.Errorf("parse error %s: %s[%d]: %w", filename, path, i, err)
		}
		s = append(s, sample)
	}
	return chronological(s, filename), nil
}

func decodeJSONSample(jitem any) (Sample, error) {
	var (
		jdate, jvalue any
		interpolated  bool
	)
	switch v := jitem.(type) {
	case []any:
		if len(v) < 2 {
			return Sample{}, fmt.Errorf("want a [date, value] pair got %v", v)
		}
		jdate, jvalue = v[0], v[1]
	case map[string]any:
		jdate, jvalue = v["on"], v["value"]
		if jdate == nil {
			jdate = v["date"]
		}
		interpolated, _ = v["interpolated"].(bool)
	default:
		return Sample{}, fmt.Errorf("want a pair or an object got %T", jitem)
	}
	return decodeJSONSampleFields(jdate, jvalue, interpolated)
}

func decodeJSONSampleFields(jdate, jvalue any, interpolated bool) (Sample, error) {
	str, ok := jdate.(string)
	if !ok {
		return Sample{}, fmt.Errorf("date must be of type 'string' got %T", jdate)
	}
	on, err := date.Parse(str)
	if err != nil {
		return Sample{}, err
	}
	value, ok := jvalue.(float64)
	if !ok {
		return Sample{}, fmt.Errorf("value must be a number got %T", jvalue)
	}
	if !finite(value) {
		return Sample{}, fmt.Errorf("value %v is not a finite number", value)
	}
	return Sample{On: on, Value: value, Interpolated: interpolated}, nil
}

// DecodeFile decodes the series stored in filename, choosing the format from
// its extension: ".jsonl", ".csv", or ".json" which requires a jsonpath
// expression.
func DecodeFile(filename, path string) (Series, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	defer f.Close()

	return decode(f, filename, filepath.Ext(filename), path)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// chronological sorts s if needed.
func chronological(s Series, filename string) Series {
	if !s.Sorted() {
		log.Printf("sort-series name=%q samples=%d", filename, len(s))
		s.Sort()
	}
	return s
}
