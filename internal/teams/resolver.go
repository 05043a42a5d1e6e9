// Package teams translates team names between the odds feed vocabulary
// and the team-metadata feed vocabulary. Resolution is a pure lookup; the
// metadata fetch itself is cosmetic and lives outside the core.
package teams

import (
	"strings"
	"sync"
)

// knownNames maps odds-feed team names to metadata-feed identifiers.
var knownNames = map[string]string{
	"Sporting Lisbon": "Sporting_CP",
	"FC Porto":        "FC_Porto",
	"Benfica":         "Benfica",
	"Braga":           "Braga",
	"Vitória SC":      "Guimaraes",
	"Famalicao":       "Famalicao",
	"Moreirense FC":   "Moreirense",
	"Casa Pia":        "Casa_Pia",
	"Boavista Porto":  "Boavista",
	"Rio Ave FC":      "Rio_Ave",
	"Gil Vicente":     "Gil_Vicente",
	"Farense":         "SC_Farense",
	"CF Estrela":      "Estrela_Amadora",
	"Vizela":          "FC_Vizela",
	"Portimonense":    "Portimonense",
	"Chaves":          "Chaves",
	"Estoril":         "Estoril-Praia",
	"Arouca":          "Arouca",
	"Nacional":        "CD_Nacional_de_Madeira",
}

// Resolver resolves odds-feed team names to metadata identifiers,
// caching results. Safe for concurrent use.
type Resolver struct {
	mu    sync.RWMutex
	cache map[string]string
}

// NewResolver creates a resolver with an empty cache.
func NewResolver() *Resolver {
	return &Resolver{
		cache: make(map[string]string),
	}
}

// Resolve returns the metadata identifier for a team name. Names absent
// from the known-name table fall back to replacing spaces with
// underscores, which is how the metadata feed slugs most clubs.
func (r *Resolver) Resolve(name string) string {
	r.mu.RLock()
	resolved, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return resolved
	}

	resolved, ok = knownNames[name]
	if !ok {
		resolved = strings.ReplaceAll(name, " ", "_")
	}

	r.mu.Lock()
	r.cache[name] = resolved
	r.mu.Unlock()

	return resolved
}
