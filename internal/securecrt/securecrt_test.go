package securecrt

import (
	"errors"
	"reflect"
	"testing"
)

func TestRender_PreservesLineEndings(t *testing.T) {
	tmpl := "S:\"Protocol Name\"=SSH2\r\n  S:\"Hostname\"=old\r\nD:\"Port\"=00000016\r\nS:\"Hostname\"=tail"
	want := "S:\"Protocol Name\"=SSH2\r\nS:\"Hostname\"=10.0.0.7\r\nD:\"Port\"=00000016\r\nS:\"Hostname\"=10.0.0.7"

	if got := Render(tmpl, "10.0.0.7"); got != want {
		t.Errorf("Render() = %q\nwant %q", got, want)
	}
}

func TestRender_NoHostnameLine(t *testing.T) {
	tmpl := "a\nb\n"
	if got := Render(tmpl, "1.1.1.1"); got != tmpl {
		t.Errorf("Render() = %q", got)
	}
}

func TestParseHostList(t *testing.T) {
	got := ParseHostList("core 10.0.0.1\n\nlonely\r\nedge 10.0.0.2 extra\n")
	want := []Session{
		{Name: "core", IP: "10.0.0.1", File: "10.0.0.1_core.ini"},
		{Name: "edge", IP: "10.0.0.2", File: "10.0.0.2_edge.ini"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseHostList() = %+v", got)
	}
}

func TestIPRange(t *testing.T) {
	got, err := IPRange("10.0.0.254", "10.0.1.1")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"10.0.0.254", "10.0.0.255", "10.0.1.0", "10.0.1.1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IPRange() = %v", got)
	}

	rev, err := IPRange("10.0.0.3", "10.0.0.1")
	if err != nil || len(rev) != 3 || rev[0] != "10.0.0.1" {
		t.Errorf("reversed range = %v, %v", rev, err)
	}

	for _, bad := range [][2]string{{"x", "10.0.0.1"}, {"10.0.0.1", "::1"}, {"10.0.0.0", "10.1.0.0"}} {
		if _, err := IPRange(bad[0], bad[1]); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("IPRange(%q, %q) error = %v, want ErrInvalidRange", bad[0], bad[1], err)
		}
	}
}

func TestPairLabels(t *testing.T) {
	ips := []string{"10.0.0.1", "10.0.0.2"}

	if _, err := PairLabels(ips, []string{"only one"}); !errors.Is(err, ErrLabelShortage) {
		t.Errorf("error = %v, want ErrLabelShortage", err)
	}

	got, err := PairLabels(ips, ReadLabels("  floor 1 \n\nfloor/2\nspare\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].File != "10.0.0.1_floor_1.ini" || got[1].File != "10.0.0.2_floor_2.ini" {
		t.Errorf("PairLabels() = %+v", got)
	}

	files := Files("S:\"Hostname\"=x\n", got)
	if string(files[1].Data) != "S:\"Hostname\"=10.0.0.2\n" {
		t.Errorf("file body = %q", files[1].Data)
	}
}
