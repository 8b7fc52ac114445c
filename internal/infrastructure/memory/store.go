// Package memory implementa los puertos de persistencia en memoria del proceso.
// Reproduce las restricciones del esquema PostgreSQL (claves únicas, FK de
// invoices.comp_code, borrado en cascada) para que el comportamiento observable
// sea el mismo. Útil para desarrollo local (STORE_DRIVER=memory) y tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// Store mantiene las cuatro "tablas" protegidas por un mutex.
type Store struct {
	mu         sync.RWMutex
	companies  map[string]entity.Company
	invoices   map[int64]entity.Invoice
	nextID     int64
	industries map[string]entity.Industry
	links      map[entity.CompanyIndustry]struct{}

	// txMu serializa los callbacks de TxRunner.Run.
	txMu sync.Mutex
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		companies:  make(map[string]entity.Company),
		invoices:   make(map[int64]entity.Invoice),
		industries: make(map[string]entity.Industry),
		links:      make(map[entity.CompanyIndustry]struct{}),
	}
}

// Repositories devuelve los repositorios sobre este almacén.
func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		Companies:  &CompanyRepo{s: s},
		Invoices:   &InvoiceRepo{s: s},
		Industries: &IndustryRepo{s: s},
	}
}

var _ repository.TxRunner = (*Store)(nil)

// Run ejecuta fn de forma exclusiva respecto a otros Run. No hay rollback:
// lo escrito antes de un error queda aplicado.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(s.Repositories())
}

func sortedKeys[K string | int64, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func errUnique(table, key string) error {
	return fmt.Errorf("memory: %s: valor duplicado para la clave %q", table, key)
}
