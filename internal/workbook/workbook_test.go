package workbook

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"core/sw[1]", "coresw1"},
		{"a:b*c?d\\e", "abcde"},
		{"", "Sheet"},
		{"[]", "Sheet"},
		{"'quoted'", "quoted"},
		{strings.Repeat("x", 40), strings.Repeat("x", 31)},
		{"한글시트", "한글시트"},
	}
	for _, tt := range tests {
		if got := SanitizeName(tt.in); got != tt.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriter_UniqueNames(t *testing.T) {
	w := NewWriter()
	defer w.Close()

	long := strings.Repeat("n", 31)
	inputs := []string{"log", "LOG", "log", long, long, ""}
	var got []string
	for _, name := range inputs {
		used, err := w.AddSheet(name, nil)
		if err != nil {
			t.Fatalf("AddSheet(%q) error = %v", name, err)
		}
		got = append(got, used)
	}

	want := []string{"log", "LOG_1", "log_2", long, strings.Repeat("n", 29) + "_1", "Sheet"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("names = %v\nwant %v", got, want)
	}
	for _, name := range got {
		if n := len([]rune(name)); n > 31 {
			t.Errorf("%q has %d characters", name, n)
		}
	}
}

func TestWriter_RoundTrip(t *testing.T) {
	w := NewWriter()
	if _, err := w.AddStringSheet("devices", []string{"host", "ip"}, [][]string{{"sw1", "10.0.0.1"}, {"sw2", ""}}); err != nil {
		t.Fatal(err)
	}
	if _, err := w.AddGridSheet("copy", [][]string{{"", "c1"}, {"r1", "42"}, {"r2", "007"}}); err != nil {
		t.Fatal(err)
	}
	data, err := w.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	w.Close()

	book, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(book.Sheets) != 2 || book.Sheets[0].Name != "devices" || book.Sheets[1].Name != "copy" {
		t.Fatalf("sheets = %+v", book.Sheets)
	}

	devices := book.Sheets[0]
	if !reflect.DeepEqual(devices.Rows[1], []string{"sw1", "10.0.0.1"}) {
		t.Errorf("devices row = %v", devices.Rows[1])
	}

	copied, ok := book.Sheet("copy")
	if !ok {
		t.Fatal("copy sheet missing")
	}
	g := copied.Grid()
	if c := g.Cell(2, 2); c.String() != "42" {
		t.Errorf("(2,2) = %+v, want 42", c)
	}
	if c := g.Cell(3, 2); c.String() != "007" {
		t.Errorf("(3,2) = %+v, want text 007", c)
	}
}

func TestSheet_Text(t *testing.T) {
	s := Sheet{Name: "x", Rows: [][]string{{"interface ", "ge0"}, {}, {"!"}}}
	if got := s.Text(); got != "interface ge0\n\n!" {
		t.Errorf("Text() = %q", got)
	}
}

func TestRead_Invalid(t *testing.T) {
	if _, err := Read(strings.NewReader("not a zip")); err == nil {
		t.Error("expected error for non-workbook input")
	}
}

func TestRead_ExcelizeFixture(t *testing.T) {
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "hostname")
	f.SetCellValue("Sheet1", "A3", "after gap")
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}

	book, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	lines := book.Sheets[0].Lines()
	if !reflect.DeepEqual(lines, []string{"hostname", "", "after gap"}) {
		t.Errorf("Lines() = %q", lines)
	}
}

func TestNames_Unique(t *testing.T) {
	n := NewNames()
	got := []string{n.Unique("a/b"), n.Unique("ab"), n.Unique("AB")}
	want := []string{"ab", "ab_1", "AB_2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Unique() = %v, want %v", got, want)
	}
}
