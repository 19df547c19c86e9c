package archive

import (
	"archive/zip"
	"bytes"
	"testing"
)

func buildZip(t *testing.T, files map[string]string, dirs ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, d := range dirs {
		if _, err := zw.Create(d + "/"); err != nil {
			t.Fatal(err)
		}
	}
	for name, body := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExpand_FiltersByExtension(t *testing.T) {
	data := buildZip(t, map[string]string{
		"logs/a.log":  "SysName: A",
		"logs/b.TXT":  "SysName: B",
		"logs/c.xlsx": "ignored",
		"readme.md":   "ignored",
	}, "logs", "empty.log")

	entries, skipped, err := Expand(data)
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("skipped = %v", skipped)
	}

	got := map[string]string{}
	for _, e := range entries {
		got[e.Name] = string(e.Data)
	}
	if len(got) != 2 || got["logs/a.log"] != "SysName: A" || got["logs/b.TXT"] != "SysName: B" {
		t.Errorf("entries = %v", got)
	}
}

func TestExpand_Corrupt(t *testing.T) {
	if _, _, err := Expand([]byte("PK\x03\x04 truncated")); err == nil {
		t.Error("expected error for corrupt archive")
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := []Entry{{Name: "sw1.txt", Data: []byte("line1\nline2")}, {Name: "sw2.txt", Data: nil}}
	if err := Write(&buf, in); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	entries, _, err := Expand(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[0].Name != "sw1.txt" || string(entries[0].Data) != "line1\nline2" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestIsArchive(t *testing.T) {
	if !IsArchive("LOGS.ZIP") || IsArchive("a.log") {
		t.Error("IsArchive misclassified")
	}
}
