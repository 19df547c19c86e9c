// Package securecrt generates SecureCRT session files from a template.
package securecrt

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"github.com/bgeun31/nettools/internal/archive"
)

// MaxRange bounds the number of addresses one IP range may expand to.
const MaxRange = 4096

const hostnameKey = `S:"Hostname"=`

var (
	ErrInvalidRange  = errors.New("invalid ip range")
	ErrLabelShortage = errors.New("fewer labels than ip addresses")
)

// Session is one file to generate.
type Session struct {
	Name string `json:"name"`
	IP   string `json:"ip"`
	File string `json:"output"`
}

// FileName returns the session file name for a host, "{ip}_{name}.ini".
// Spaces and path separators in the name become underscores.
func FileName(ip, name string) string {
	name = strings.NewReplacer(" ", "_", "/", "_", `\`, "_").Replace(name)
	return ip + "_" + name + ".ini"
}

// ParseHostList reads "name ip" pairs, one per line. Extra columns are
// ignored and lines with fewer than two fields are skipped.
func ParseHostList(text string) []Session {
	var out []Session
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		out = append(out, Session{Name: fields[0], IP: fields[1], File: FileName(fields[1], fields[0])})
	}
	return out
}

// ReadLabels returns the non-blank lines of text, trimmed.
func ReadLabels(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// IPRange expands an inclusive IPv4 range. Reversed bounds are swapped.
func IPRange(start, end string) ([]string, error) {
	a, err := netip.ParseAddr(strings.TrimSpace(start))
	if err != nil || !a.Is4() {
		return nil, fmt.Errorf("%w: start %q", ErrInvalidRange, start)
	}
	b, err := netip.ParseAddr(strings.TrimSpace(end))
	if err != nil || !b.Is4() {
		return nil, fmt.Errorf("%w: end %q", ErrInvalidRange, end)
	}
	if b.Less(a) {
		a, b = b, a
	}

	var out []string
	for ip := a; ; ip = ip.Next() {
		if len(out) == MaxRange {
			return nil, fmt.Errorf("%w: more than %d addresses", ErrInvalidRange, MaxRange)
		}
		out = append(out, ip.String())
		if ip == b {
			break
		}
	}
	return out, nil
}

// PairLabels assigns labels to addresses in order. Extra labels are unused;
// too few labels is an error.
func PairLabels(ips, labels []string) ([]Session, error) {
	if len(labels) < len(ips) {
		return nil, fmt.Errorf("%w: %d labels for %d addresses", ErrLabelShortage, len(labels), len(ips))
	}
	out := make([]Session, len(ips))
	for i, ip := range ips {
		out[i] = Session{Name: labels[i], IP: ip, File: FileName(ip, labels[i])}
	}
	return out, nil
}

// Render returns template with every line whose trimmed text starts with
// S:"Hostname"= replaced by one pointing at ip. Line endings are kept.
func Render(template, ip string) string {
	lines := strings.SplitAfter(template, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), hostnameKey) {
			continue
		}
		ending := ""
		switch {
		case strings.HasSuffix(line, "\r\n"):
			ending = "\r\n"
		case strings.HasSuffix(line, "\n"):
			ending = "\n"
		}
		lines[i] = hostnameKey + ip + ending
	}
	return strings.Join(lines, "")
}

// Files renders one archive entry per session.
func Files(template string, sessions []Session) []archive.Entry {
	out := make([]archive.Entry, len(sessions))
	for i, s := range sessions {
		out[i] = archive.Entry{Name: s.File, Data: []byte(Render(template, s.IP))}
	}
	return out
}
