package lldp

// Header is the column order of exported adjacency rows.
var Header = []string{"sysName", "Port", "NeighborName", "NeighborPort", "NeighborIP", "LocalIP"}

// Row renders a for export, with ports written as P<n>.
func (a Adjacency) Row() []string {
	return []string{a.LocalName, "P" + a.LocalPort, a.NeighborName, "P" + a.NeighborPort, a.NeighborIP, a.LocalIP}
}

// Grouped renders adjacencies for export with a blank row between runs of
// different local names. The input is expected to be sorted already.
func Grouped(adj []Adjacency) [][]string {
	rows := make([][]string, 0, len(adj))
	for i, a := range adj {
		if i > 0 && a.LocalName != adj[i-1].LocalName {
			rows = append(rows, make([]string, len(Header)))
		}
		rows = append(rows, a.Row())
	}
	return rows
}
