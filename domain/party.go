// Package domain contains core concepts of the shared chat ledger.
// No runtime, network, or UI logic should be added here.
package domain

// Party identifies one independent node on the network. Parties are
// compared by name; identity resolution is the substrate's concern.
type Party string

func (p Party) String() string { return string(p) }
