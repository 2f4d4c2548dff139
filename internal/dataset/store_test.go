// internal/dataset/store_test.go
package dataset_test

import (
	"testing"

	"coplot/internal/dataset"
)

func TestFileStore_SaveLoadCSV(t *testing.T) {
	fs := dataset.NewFileStore(t.TempDir())

	if err := fs.Save("london.csv", dataset.London()); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := fs.Load("london.csv")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != "london" {
		t.Fatalf("name = %q, want london", got.Name)
	}
	if got.Len() != 5 || len(got.Columns) != 4 {
		t.Fatalf("shape = %dx%d, want 5x4", got.Len(), len(got.Columns))
	}
}

func TestFileStore_SaveLoadJSON(t *testing.T) {
	fs := dataset.NewFileStore(t.TempDir())
	want := dataset.Waves()

	if err := fs.Save("waves.json", want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := fs.Load("waves.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != want.Name || got.Len() != want.Len() {
		t.Fatalf("got %s/%d rows, want %s/%d", got.Name, got.Len(), want.Name, want.Len())
	}
	sin, ok := got.Column("sin")
	if !ok {
		t.Fatal("column sin missing after round trip")
	}
	wantSin, _ := want.Column("sin")
	if sin.Values[10] != wantSin.Values[10] {
		t.Fatalf("sin[10] = %v, want %v", sin.Values[10], wantSin.Values[10])
	}
}

func TestFileStore_UnknownExtension(t *testing.T) {
	fs := dataset.NewFileStore(t.TempDir())

	if err := fs.Save("tbl.yaml", dataset.London()); err == nil {
		t.Fatal("expected error for unsupported save extension")
	}
	if _, err := fs.Load("tbl.yaml"); err == nil {
		t.Fatal("expected error for unsupported load extension")
	}
}

func TestFileStore_MissingFile(t *testing.T) {
	fs := dataset.NewFileStore(t.TempDir())
	if _, err := fs.Load("absent.csv"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
