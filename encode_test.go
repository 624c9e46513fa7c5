package chart

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/chart/date"
	"github.com/google/go-cmp/cmp"
)

var dateOpt = cmp.AllowUnexported(date.Date{})

func TestDecodeSeries(t *testing.T) {
	in := `{"on":"2025-01-02","value":110}

{"on":"2025-01-01","value":100}
{"on":"2025-01-03","value":105.5,"interpolated":true}
`
	got, err := DecodeSeries(strings.NewReader(in), "test.jsonl")
	if err != nil {
		t.Fatalf("DecodeSeries() error = %v", err)
	}
	want := Series{
		{On: date.New(2025, 1, 1), Value: 100},
		{On: date.New(2025, 1, 2), Value: 110},
		{On: date.New(2025, 1, 3), Value: 105.5, Interpolated: true},
	}
	if diff := cmp.Diff(want, got, dateOpt); diff != "" {
		t.Errorf("DecodeSeries() mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := EncodeSeries(&buf, got); err != nil {
		t.Fatalf("EncodeSeries() error = %v", err)
	}
	wantJSONL := `{"on":"2025-01-01","value":100}
{"on":"2025-01-02","value":110}
{"on":"2025-01-03","value":105.5,"interpolated":true}
`
	if buf.String() != wantJSONL {
		t.Errorf("EncodeSeries() = %q want %q", buf.String(), wantJSONL)
	}
}

func TestDecodeSeries_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		wantErr string
	}{
		{"not json", "{on:", "test.jsonl:1"},
		{"no date", `{"value":1}`, `missing the property "on"`},
		{"no value", `{"on":"2025-01-01"}` + "\n" + `{"on":"2025-01-02"}`, `test.jsonl:1: missing the property "value"`},
		{"bad date", `{"on":"yesterday","value":1}`, "invalid date"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSeries(strings.NewReader(tc.in), "test.jsonl")
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("DecodeSeries() error = %v want containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestDecodeCSV(t *testing.T) {
	in := `date,value,interpolated
# exported balance
2025-01-01, 100
2025-01-02,110,true
2025-01-03,90,
`
	got, err := DecodeCSV(strings.NewReader(in), "test.csv")
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}
	want := Series{
		{On: date.New(2025, 1, 1), Value: 100},
		{On: date.New(2025, 1, 2), Value: 110, Interpolated: true},
		{On: date.New(2025, 1, 3), Value: 90},
	}
	if diff := cmp.Diff(want, got, dateOpt); diff != "" {
		t.Errorf("DecodeCSV() mismatch (-want +got):\n%s", diff)
	}

	if _, err := DecodeCSV(strings.NewReader("2025-01-01,100\n2025-01-02,abc\n"), "test.csv"); err == nil || !strings.Contains(err.Error(), "test.csv:2") {
		t.Errorf("DecodeCSV(bad value) error = %v want test.csv:2", err)
	}
}

func TestDecodeCSV_NotFinite(t *testing.T) {
	for _, v := range []string{"NaN", "nan", "Inf", "-Inf", "+infinity"} {
		in := "2025-01-01,100\n2025-01-02," + v + "\n2025-01-03,7\n"
		_, err := DecodeCSV(strings.NewReader(in), "test.csv")
		if err == nil || !strings.Contains(err.Error(), "test.csv:2") || !strings.Contains(err.Error(), "not a finite number") {
			t.Errorf("DecodeCSV(%s) error = %v want test.csv:2 not a finite number", v, err)
		}
	}
}

func TestDecodeJSONSampleFields_NotFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := decodeJSONSampleFields("2025-01-01", v, false); err == nil || !strings.Contains(err.Error(), "not a finite number") {
			t.Errorf("decodeJSONSampleFields(%v) error = %v want not a finite number", v, err)
		}
	}
	if got, err := decodeJSONSampleFields("2025-01-01", 12.5, true); err != nil || got.Value != 12.5 || !got.Interpolated {
		t.Errorf("decodeJSONSampleFields(12.5) = %+v, %v want an interpolated 12.5", got, err)
	}
}

func TestDecodeJSONPath(t *testing.T) {
	in := `{
	"info": {"isin": "LS000IUSD016"},
	"series": {
		"history": {"data": [["2025-01-02", 11.5], ["2025-01-01", 10]]},
		"estimated": [{"date": "2025-01-03", "value": 12, "interpolated": true}]
	}
}`
	got, err := DecodeJSONPath(strings.NewReader(in), "$.series.history.data", "test.json")
	if err != nil {
		t.Fatalf("DecodeJSONPath() error = %v", err)
	}
	want := Series{
		{On: date.New(2025, 1, 1), Value: 10},
		{On: date.New(2025, 1, 2), Value: 11.5},
	}
	if diff := cmp.Diff(want, got, dateOpt); diff != "" {
		t.Errorf("DecodeJSONPath() mismatch (-want +got):\n%s", diff)
	}

	got, err = DecodeJSONPath(strings.NewReader(in), "$.series.estimated", "test.json")
	if err != nil {
		t.Fatalf("DecodeJSONPath(objects) error = %v", err)
	}
	if len(got) != 1 || !got[0].Interpolated || got[0].Value != 12 {
		t.Errorf("DecodeJSONPath(objects) = %+v want one interpolated sample", got)
	}

	if _, err := DecodeJSONPath(strings.NewReader(in), "$.info.isin", "test.json"); err == nil {
		t.Errorf("DecodeJSONPath(not a list) error = nil want an error")
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "balance.csv")
	if err := os.WriteFile(filename, []byte("2025-01-01,1\n2025-01-02,2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeFile(filename, "")
	if err != nil || len(got) != 2 {
		t.Errorf("DecodeFile(csv) = %v, %v want 2 samples", got, err)
	}
	if _, err := DecodeFile(filepath.Join(dir, "balance.xml"), ""); err == nil {
		t.Errorf("DecodeFile(missing) error = nil want an error")
	}
	if err := os.WriteFile(filepath.Join(dir, "b.json"), []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeFile(filepath.Join(dir, "b.json"), ""); err == nil {
		t.Errorf("DecodeFile(json without path) error = nil want an error")
	}
}
