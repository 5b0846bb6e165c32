package entities

import "time"

// Snapshot é um conjunto imutável de sessões, usuários e conversões
// gerado em um único passo. Todos os gráficos de uma renderização do
// dashboard leem o mesmo snapshot.
type Snapshot struct {
	ID          string       `json:"id"`
	Seed        uint64       `json:"seed"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Sessions    []Session    `json:"sessions"`
	Users       []User       `json:"users"`
	Conversions []Conversion `json:"conversions"`
}

// SnapshotInfo resume um snapshot sem as coleções
type SnapshotInfo struct {
	ID          string    `json:"id"`
	Seed        uint64    `json:"seed"`
	GeneratedAt time.Time `json:"generatedAt"`
	Sessions    int       `json:"sessions"`
	Users       int       `json:"users"`
	Conversions int       `json:"conversions"`
}

// Info retorna os metadados do snapshot
func (s *Snapshot) Info() SnapshotInfo {
	return SnapshotInfo{
		ID:          s.ID,
		Seed:        s.Seed,
		GeneratedAt: s.GeneratedAt,
		Sessions:    len(s.Sessions),
		Users:       len(s.Users),
		Conversions: len(s.Conversions),
	}
}
