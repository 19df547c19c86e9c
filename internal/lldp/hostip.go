package lldp

// HostIPMap maps normalized hostnames to the first address seen for them.
// Entries are only ever added, never replaced, and iteration follows
// insertion order. It is built before any reader uses it and is not safe for
// concurrent writes.
type HostIPMap struct {
	ips   map[string]string
	order []string
}

// NewHostIPMap returns an empty map.
func NewHostIPMap() *HostIPMap {
	return &HostIPMap{ips: make(map[string]string)}
}

// Add records host -> ip unless host is already known or ip is empty.
// It reports whether the entry was inserted.
func (m *HostIPMap) Add(host, ip string) bool {
	if host == "" || ip == "" {
		return false
	}
	if _, ok := m.ips[host]; ok {
		return false
	}
	m.ips[host] = ip
	m.order = append(m.order, host)
	return true
}

// Lookup returns the address recorded for host.
func (m *HostIPMap) Lookup(host string) (string, bool) {
	if m == nil {
		return "", false
	}
	ip, ok := m.ips[host]
	return ip, ok
}

// Len returns the number of hosts.
func (m *HostIPMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// Hosts returns hostnames in insertion order.
func (m *HostIPMap) Hosts() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.order...)
}
