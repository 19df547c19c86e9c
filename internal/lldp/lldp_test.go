package lldp

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/bgeun31/nettools/internal/extract"
)

func lines(ls ...string) string { return strings.Join(ls, "\n") }

func parse(t *testing.T, opts Options, docs ...extract.Document) *Result {
	t.Helper()
	res, err := NewParser(extract.MustDefault(), opts).Parse(context.Background(), docs)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return res
}

func TestParse_CrossDocumentIP(t *testing.T) {
	r1 := extract.Document{Name: "r1.log", Text: lines(
		"SysName: R1",
		"mgmt port  up  10.0.0.1 255.255.255.0",
	)}
	r2 := extract.Document{Name: "r2.log", Text: lines(
		"SysName: R2",
		"1  00:11:22:33:44:55  1/1/1  120  B  R1",
	)}

	res := parse(t, Options{}, r2, r1)

	if len(res.Adjacencies) != 1 {
		t.Fatalf("got %d adjacencies, want 1: %+v", len(res.Adjacencies), res.Adjacencies)
	}
	a := res.Adjacencies[0]
	if a.LocalName != "R2" || a.NeighborName != "R1" {
		t.Errorf("names = %q -> %q", a.LocalName, a.NeighborName)
	}
	if a.NeighborIP != "10.0.0.1" {
		t.Errorf("NeighborIP = %q, want 10.0.0.1", a.NeighborIP)
	}
	if a.LocalIP != "" {
		t.Errorf("LocalIP = %q, want empty", a.LocalIP)
	}
}

func TestParse_NoiseAndSubPort(t *testing.T) {
	doc := extract.Document{Name: "a.log", Text: lines(
		"SysName: SwitchA",
		"1  00:11:22:33:44:01  1/1/1  120  B  September",
		"2  00:11:22:33:44:02  1/1/2  120  B  Not-Advertised",
		"3  00:11:22:33:44:03  1/1/3  120  B  SwitchC",
		"4  00:11:22:33:44:04  ge0    120  B  Decoder01",
	)}

	res := parse(t, Options{}, doc)

	var got []string
	for _, a := range res.Adjacencies {
		got = append(got, a.NeighborName+":"+a.NeighborPort)
	}
	want := []string{"SwitchC:1", "Decoder01:ge0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("neighbors = %v, want %v", got, want)
	}
}

func TestParse_SkipsDocumentsWithoutSysname(t *testing.T) {
	doc := extract.Document{Name: "anon.log", Text: "1  00:11:22:33:44:55  1/1/1  120  B  R1"}
	res := parse(t, Options{}, doc)

	if len(res.Adjacencies) != 0 {
		t.Errorf("expected no adjacencies, got %+v", res.Adjacencies)
	}
	if !reflect.DeepEqual(res.Unidentified, []string{"anon.log"}) {
		t.Errorf("Unidentified = %v", res.Unidentified)
	}
}

func TestParse_FilenameIPFallback(t *testing.T) {
	docs := []extract.Document{
		{Name: "10.1.1.9_core.log", Text: "SysName: PUSTC_CORE"},
		{Name: "edge.log", Text: lines(
			"SysName: PUSTC_EDGE",
			"[2024-01-02 10:00] 7  00:11:22:33:44:55  1/7  120  B  PUSTC_CORE",
		)},
	}

	res := parse(t, Options{StripPrefix: "PUSTC_"}, docs...)

	if len(res.Adjacencies) != 1 {
		t.Fatalf("got %+v", res.Adjacencies)
	}
	a := res.Adjacencies[0]
	want := Adjacency{
		LocalName:    "EDGE",
		LocalPort:    "7",
		NeighborName: "CORE",
		NeighborPort: "7",
		NeighborMAC:  "00:11:22:33:44:55",
		NeighborIP:   "10.1.1.9",
	}
	if a != want {
		t.Errorf("got %+v\nwant %+v", a, want)
	}
}

func TestParse_NaturalOrderAndGrouping(t *testing.T) {
	mk := func(name string) extract.Document {
		return extract.Document{Name: name + ".log", Text: lines(
			"SysName: "+name,
			"1  aa:bb:cc:00:00:01  1/1  120  B  peerA",
			"2  aa:bb:cc:00:00:02  1/2  120  B  peerB",
		)}
	}

	res := parse(t, Options{Workers: 2}, mk("sw10"), mk("sw2"), mk("sw1"))

	var order []string
	for _, a := range res.Adjacencies {
		order = append(order, a.LocalName+"/"+a.NeighborName)
	}
	want := []string{"sw1/peerA", "sw1/peerB", "sw2/peerA", "sw2/peerB", "sw10/peerA", "sw10/peerB"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}

	rows := Grouped(res.Adjacencies)
	if len(rows) != 8 {
		t.Fatalf("got %d grouped rows, want 8", len(rows))
	}
	for _, i := range []int{2, 5} {
		if strings.Join(rows[i], "") != "" {
			t.Errorf("row %d = %v, want blank separator", i, rows[i])
		}
	}
	if rows[0][1] != "P1" || rows[0][3] != "P1" {
		t.Errorf("first row = %v", rows[0])
	}
}

func TestParse_NeighborPatterns(t *testing.T) {
	doc := extract.Document{Name: "a.log", Text: lines(
		"SysName: A",
		"1  00:11:22:33:44:01  1/1  120  B  PUSTC_AP01",
		"2  00:11:22:33:44:02  1/2  120  B  PUSTC_SW01",
	)}

	res := parse(t, Options{NeighborPatterns: CompileFilters("*AP*")}, doc)

	if len(res.Adjacencies) != 1 || res.Adjacencies[0].NeighborName != "PUSTC_AP01" {
		t.Errorf("got %+v", res.Adjacencies)
	}
}

func TestParse_OUIFilter(t *testing.T) {
	doc := extract.Document{Name: "a.log", Text: lines(
		"SysName: A",
		"1  00:1b:21:00:00:01  1/1  120  B  keep",
		"2  f0:00:00:00:00:02  1/2  120  B  drop",
	)}

	res := parse(t, Options{OUIs: ParseOUIs("00-1B-21")}, doc)
	if len(res.Adjacencies) != 1 || res.Adjacencies[0].NeighborName != "keep" {
		t.Errorf("explicit OUI: got %+v", res.Adjacencies)
	}

	res = parse(t, Options{AutoDetectOUI: true}, doc)
	if len(res.Adjacencies) != 2 {
		t.Errorf("auto-detected OUI: got %+v", res.Adjacencies)
	}
}

func TestParse_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewParser(extract.MustDefault(), Options{}).Parse(ctx, []extract.Document{{Name: "a", Text: "SysName: A"}})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestHostIPMap_FirstWins(t *testing.T) {
	m := NewHostIPMap()
	if !m.Add("a", "1.1.1.1") {
		t.Error("first Add should insert")
	}
	if m.Add("a", "2.2.2.2") {
		t.Error("second Add should not replace")
	}
	if m.Add("b", "") {
		t.Error("empty address should not be recorded")
	}
	m.Add("c", "3.3.3.3")

	if ip, _ := m.Lookup("a"); ip != "1.1.1.1" {
		t.Errorf("Lookup(a) = %q", ip)
	}
	if got := m.Hosts(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("Hosts() = %v", got)
	}
}

func TestSubPort(t *testing.T) {
	tests := map[string]string{
		"1/1/3":    "1",
		"1/12":     "12",
		"ge-0/0":   "0",
		"eth0":     "eth0",
		"Gi1/0/24": "0",
		"2/15":     "15",
	}
	for in, want := range tests {
		if got := SubPort(in); got != want {
			t.Errorf("SubPort(%q) = %q, want %q", in, got, want)
		}
	}
}
