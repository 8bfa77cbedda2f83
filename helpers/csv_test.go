package helpers

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var sampleCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,,
`

func TestReadCSV(t *testing.T) {
	df, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if df.Nrow() != 2 {
		t.Errorf("Nrow = %d, want 2", df.Nrow())
	}
	if df.Ncol() != 9 {
		t.Errorf("Ncol = %d, want 9", df.Ncol())
	}

	names := df.Names()
	if names[0] != "Unnamed: 0" {
		t.Errorf("names[0] = %q, want Unnamed: 0", names[0])
	}
	if names[1] != "Start Time" {
		t.Errorf("names[1] = %q, want Start Time", names[1])
	}

	duration := df.Col("Trip Duration").Records()
	if duration[1] != "1610" {
		t.Errorf("Trip Duration[1] = %q, want 1610 kept as text", duration[1])
	}

	gender := df.Col("Gender").IsNaN()
	if gender[0] || !gender[1] {
		t.Errorf("Gender NA flags = %v, want [false true]", gender)
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	data := ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n"
	df, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("a header with no rows should load, got %v", err)
	}
	if df.Nrow() != 0 {
		t.Errorf("Nrow = %d, want 0", df.Nrow())
	}
	names := df.Names()
	if len(names) != 7 || names[0] != "Unnamed: 0" || names[3] != "Trip Duration" {
		t.Errorf("names = %v", names)
	}
}

func TestReadCSVEmptyInputFails(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected an error for input without a header row")
	}
}

func TestReadCSVRaggedRowsFail(t *testing.T) {
	data := "Start Time,Trip Duration\n2017-01-01 00:00:00,10,extra\n"
	if _, err := ReadCSV(strings.NewReader(data)); err == nil {
		t.Fatal("expected an error for a row with too many fields")
	}
}

func TestReadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chicago.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	df, err := ReadCSVFile(path)
	if err != nil {
		t.Fatalf("ReadCSVFile failed: %v", err)
	}
	if df.Nrow() != 2 {
		t.Errorf("Nrow = %d, want 2", df.Nrow())
	}
}

func TestReadCSVFileMissing(t *testing.T) {
	_, err := ReadCSVFile(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v should wrap fs.ErrNotExist", err)
	}
}
