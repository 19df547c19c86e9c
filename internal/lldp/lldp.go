// Package lldp reconstructs link adjacencies from captured
// "show lldp neighbors" output.
//
// Parsing is a two-phase protocol. The index phase reads every document's
// identity and management address into a HostIPMap; only after all documents
// are indexed does the resolve phase scan neighbor tables, so a row in one
// document can be resolved with an address learned from another. Both phases
// fan out over a bounded worker pool with a barrier between them.
package lldp

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/bgeun31/nettools/internal/extract"
	"github.com/bgeun31/nettools/internal/natsort"
)

// DefaultWorkers bounds per-phase concurrency when Options.Workers is unset.
const DefaultWorkers = 4

// rowPattern matches a neighbor table row: optional [timestamp], port index,
// MAC-like token, port id, two ignored columns, neighbor name.
// Columns are separated by horizontal space only, so a row never spans lines.
var rowPattern = regexp.MustCompile(`(?m)^[ \t]*(?:\[[^\]\n]*\][ \t]*)?(\d+)[ \t]+([\w:.\-]+)[ \t]+(\S+)[ \t]+\S+[ \t]+\S+[ \t]+(\S+)`)

var subPortPattern = regexp.MustCompile(`/(\d+)`)

// Adjacency is one link seen from the local device.
type Adjacency struct {
	LocalName    string `json:"local_name"`
	LocalPort    string `json:"local_port"`
	NeighborName string `json:"neighbor_name"`
	NeighborPort string `json:"neighbor_port"`
	NeighborMAC  string `json:"neighbor_mac"`
	NeighborIP   string `json:"neighbor_ip"`
	LocalIP      string `json:"local_ip"`
}

// Options configures a Parser.
type Options struct {
	// StripPrefix is removed from the front of local and neighbor names.
	StripPrefix string

	// NeighborPatterns, when non-empty, must match the raw neighbor name.
	NeighborPatterns []*regexp.Regexp

	// OUIs restricts rows to neighbor MACs with one of these compact
	// prefixes (see ParseOUIs). Empty means no restriction unless
	// AutoDetectOUI harvests a list from the document.
	OUIs          []string
	AutoDetectOUI bool

	// Noise rejects garbage neighbor names. Nil uses DefaultNoiseFilter.
	Noise *NoiseFilter

	Workers int
}

// Parser turns document batches into adjacencies.
type Parser struct {
	patterns *extract.PatternSet
	opts     Options
	noise    NoiseFilter
}

// NewParser returns a Parser using ps for sysname and IP extraction.
func NewParser(ps *extract.PatternSet, opts Options) *Parser {
	noise := DefaultNoiseFilter()
	if opts.Noise != nil {
		noise = *opts.Noise
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	return &Parser{patterns: ps, opts: opts, noise: noise}
}

// Result is the outcome of parsing one batch.
type Result struct {
	Adjacencies []Adjacency
	Hosts       *HostIPMap
	// Unidentified lists documents with no sysname; they contribute nothing.
	Unidentified []string
}

// identity is the index-phase result for one document.
type identity struct {
	name string
	ip   string
	ok   bool
}

// Parse runs both phases over docs. Output is sorted by local name in
// natural order, with rows of one device kept in document order.
func (p *Parser) Parse(ctx context.Context, docs []extract.Document) (*Result, error) {
	ids := make([]identity, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)
	for i := range docs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ids[i] = p.identify(docs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("index documents: %w", err)
	}

	res := &Result{Hosts: NewHostIPMap()}
	for i, id := range ids {
		if !id.ok {
			res.Unidentified = append(res.Unidentified, docs[i].Name)
			continue
		}
		res.Hosts.Add(id.name, id.ip)
	}

	perDoc := make([][]Adjacency, len(docs))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)
	for i := range docs {
		i := i
		if !ids[i].ok {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perDoc[i] = p.resolve(docs[i].Text, ids[i].name, res.Hosts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolve adjacencies: %w", err)
	}

	for _, rows := range perDoc {
		res.Adjacencies = append(res.Adjacencies, rows...)
	}
	natsort.SliceStable(res.Adjacencies, func(i int) string { return res.Adjacencies[i].LocalName })
	return res, nil
}

func (p *Parser) identify(doc extract.Document) identity {
	sysname := p.patterns.Extract(extract.FieldSysname, doc.Text)
	if !sysname.Found {
		return identity{}
	}
	ip := p.patterns.Extract(extract.FieldIP, doc.Text)
	if !ip.Found {
		ip = p.patterns.Extract(extract.FieldFilenameIP, extract.BaseName(doc.Name))
	}
	return identity{name: p.strip(sysname.Text), ip: ip.Text, ok: true}
}

func (p *Parser) resolve(text, local string, hosts *HostIPMap) []Adjacency {
	ouis := p.opts.OUIs
	if p.opts.AutoDetectOUI && len(ouis) == 0 {
		ouis = CollectOUIs(text)
	}
	localIP, _ := hosts.Lookup(local)

	var out []Adjacency
	for _, m := range rowPattern.FindAllStringSubmatch(text, -1) {
		port, mac, portID, neighbor := m[1], m[2], m[3], m[4]

		if !matchAny(p.opts.NeighborPatterns, neighbor) {
			continue
		}
		if !matchOUI(ouis, mac) {
			continue
		}
		name := p.strip(neighbor)
		if p.noise.Reject(name) {
			continue
		}
		ip, _ := hosts.Lookup(name)

		out = append(out, Adjacency{
			LocalName:    local,
			LocalPort:    port,
			NeighborName: name,
			NeighborPort: SubPort(portID),
			NeighborMAC:  mac,
			NeighborIP:   ip,
			LocalIP:      localIP,
		})
	}
	return out
}

func (p *Parser) strip(name string) string {
	if p.opts.StripPrefix == "" {
		return name
	}
	return strings.TrimPrefix(name, p.opts.StripPrefix)
}

// SubPort returns the digits after the first "/" in a port id, so "1/1/3"
// yields "1" and "Gi1/0/24" yields "0". Ids without one are returned as is.
func SubPort(portID string) string {
	m := subPortPattern.FindStringSubmatch(portID)
	if m == nil {
		return portID
	}
	return m[1]
}
