// Package salesforce implements the CustomerDataStore port against local JSON
// files, one file per customer and record type. It stands in for the real
// Salesforce REST API: the read path maps stored records to domain types, the
// write path appends to the per-customer file the way a production client
// would POST a new sObject.
package salesforce

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/powerme/portal-api/internal/core/domain"
)

// Store reads and writes per-customer mock files under Dir:
//
//	documents-<customer_id>.json  {"documents": [...]}
//	cases-<customer_id>.json      {"cases": [...]}
//
// Appends are read-modify-write on a whole file, so they are serialised with
// a mutex. A missing file means the customer simply has no records yet.
type Store struct {
	dir string
	mu  sync.Mutex
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create mock data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

type documentsFile struct {
	Documents []domain.Document `json:"documents"`
}

type casesFile struct {
	Cases []domain.Case `json:"cases"`
}

func (s *Store) ListDocuments(_ context.Context, customerID string) ([]domain.Document, error) {
	var f documentsFile
	if err := s.readFile(s.path("documents", customerID), &f); err != nil {
		return nil, err
	}
	if f.Documents == nil {
		f.Documents = []domain.Document{}
	}
	return f.Documents, nil
}

func (s *Store) AppendDocument(_ context.Context, customerID string, doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path("documents", customerID)
	var f documentsFile
	if err := s.readFile(path, &f); err != nil {
		return err
	}
	f.Documents = append(f.Documents, doc)
	return s.writeFile(path, f)
}

func (s *Store) ListCases(_ context.Context, customerID string) ([]domain.Case, error) {
	var f casesFile
	if err := s.readFile(s.path("cases", customerID), &f); err != nil {
		return nil, err
	}
	if f.Cases == nil {
		f.Cases = []domain.Case{}
	}
	return f.Cases, nil
}

func (s *Store) AppendCase(_ context.Context, customerID string, c domain.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path("cases", customerID)
	var f casesFile
	if err := s.readFile(path, &f); err != nil {
		return err
	}
	f.Cases = append(f.Cases, c)
	return s.writeFile(path, f)
}

func (s *Store) path(resource, customerID string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s-%s.json", resource, customerID))
}

func (s *Store) readFile(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read mock file: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse mock file %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (s *Store) writeFile(path string, value any) error {
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode mock file: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write mock file: %w", err)
	}
	return nil
}
