package export

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pfrederiksen/lectionary-readings/internal/reading"
)

func sampleRecords() []reading.Reading {
	return []reading.Reading{
		reading.New("1st Sunday of Advent", reading.CycleA, "1", reading.TypeStandard,
			"Isa 2:1-5", "Ps 122:1-2", "Rom 13:11-14", "Ps 85:8", "Matt 24:37-44", "Advent"),
		reading.New("Christmas", reading.CycleFixed, "13", reading.TypeVigil,
			"Isa 62:1-5", "Ps 89:4-5", "Acts 13:16-17", "", "Matt 1:1-25", "Christmas"),
		reading.New("Easter Sunday", reading.CycleFixed, "42", reading.TypeStandard,
			"Acts 10:34a,37-43", "Ps 118:1-2", "Col 3:1-4", "1 Cor 5:7b-8a", "John 20:1-9", "Easter"),
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readings.csv")
	records := sampleRecords()

	if err := Write(records, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(got) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(got))
	}
	for i := range records {
		if !reflect.DeepEqual(got[i], records[i]) {
			t.Errorf("record %d changed in round trip:\n  wrote %+v\n  read  %+v", i, records[i], got[i])
		}
	}
}

func TestWriteHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readings.csv")

	if err := Write(nil, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	firstLine := strings.SplitN(strings.TrimRight(string(data), "\n"), "\n", 2)[0]
	expected := strings.Join(Headers, ",")
	if firstLine != expected {
		t.Errorf("header = %q, expected %q", firstLine, expected)
	}
}

func TestWriteFailsOnBadPath(t *testing.T) {
	err := Write(sampleRecords(), filepath.Join(t.TempDir(), "missing", "readings.csv"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRecords())

	if s.Total != 3 {
		t.Errorf("total = %d, expected 3", s.Total)
	}
	if s.ByCycle["Fixed"] != 2 {
		t.Errorf("Fixed count = %d, expected 2", s.ByCycle["Fixed"])
	}
	if s.ByCycle["A"] != 1 {
		t.Errorf("A count = %d, expected 1", s.ByCycle["A"])
	}
	if s.ByType[reading.TypeStandard] != 2 {
		t.Errorf("Standard count = %d, expected 2", s.ByType[reading.TypeStandard])
	}
	if s.ByType[reading.TypeVigil] != 1 {
		t.Errorf("Vigil count = %d, expected 1", s.ByType[reading.TypeVigil])
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || len(s.ByCycle) != 0 || len(s.ByType) != 0 {
		t.Errorf("empty summary should be all zeroes, got %+v", s)
	}
}
