// Package clinic persists clinic projections as JSON documents. Each
// document carries the clinic's dentists inline, so reads return the fully
// materialized projection the search engine expects.
package clinic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/novadent/clindex/internal/db"
	"github.com/novadent/clindex/internal/domain"
	domclinic "github.com/novadent/clindex/internal/domain/clinic"
)

// DefaultKeyPrefix is used when no storage prefix is configured.
const DefaultKeyPrefix = "clindex:"

// store is the consumer interface for clinic persistence (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements the clinic repository over a db.DocStore.
type Repo struct {
	store  store
	prefix string
}

// New creates a clinic repository. An empty prefix falls back to
// DefaultKeyPrefix.
func New(s store, prefix string) *Repo {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Repo{store: s, prefix: prefix}
}

// Upsert stores a clinic projection. Returns true if the clinic was created.
func (r *Repo) Upsert(ctx context.Context, c *domclinic.Clinic) (bool, error) {
	key := r.key(c.ID())

	data, err := json.Marshal(toDoc(c))
	if err != nil {
		return false, fmt.Errorf("marshal clinic: %w", err)
	}

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}

	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return false, fmt.Errorf("json.set %s: %w", key, err)
	}

	return !exists, nil
}

// Get returns a clinic by ID.
func (r *Repo) Get(ctx context.Context, id string) (domclinic.Clinic, error) {
	key := r.key(id)

	raw, err := r.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domclinic.Clinic{}, domain.ErrClinicNotFound
		}
		return domclinic.Clinic{}, fmt.Errorf("json.get %s: %w", key, err)
	}

	doc, err := unwrapDoc(raw)
	if err != nil {
		return domclinic.Clinic{}, fmt.Errorf("parse clinic %s: %w", id, err)
	}
	return doc.toClinic(id), nil
}

// Delete removes a clinic.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := r.key(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrClinicNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// List returns every stored clinic, ordered by ID for a deterministic
// directory order. Keys removed between SCAN and fetch are skipped.
func (r *Repo) List(ctx context.Context) ([]domclinic.Clinic, error) {
	keys, err := r.store.Scan(ctx, r.prefix+"clinic:*")
	if err != nil {
		return nil, fmt.Errorf("scan clinics: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	sort.Strings(keys)

	raws, err := r.store.JSONGetMulti(ctx, keys, "$")
	if err != nil {
		return nil, fmt.Errorf("fetch clinics: %w", err)
	}

	clinics := make([]domclinic.Clinic, 0, len(raws))
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		id := strings.TrimPrefix(keys[i], r.prefix+"clinic:")
		doc, err := unwrapDoc(raw)
		if err != nil {
			return nil, fmt.Errorf("parse clinic %s: %w", id, err)
		}
		clinics = append(clinics, doc.toClinic(id))
	}

	return clinics, nil
}

func (r *Repo) key(id string) string {
	return r.prefix + "clinic:" + id
}

// clinicDoc is the JSON storage shape of a clinic projection.
type clinicDoc struct {
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	Email       string       `json:"email,omitempty"`
	PhoneNumber string       `json:"phone_number,omitempty"`
	Description string       `json:"description,omitempty"`
	Website     string       `json:"website,omitempty"`
	Dentists    []dentistDoc `json:"dentists,omitempty"`
}

type dentistDoc struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

func toDoc(c *domclinic.Clinic) clinicDoc {
	doc := clinicDoc{
		Name:        c.Name(),
		Address:     c.Address(),
		Email:       c.Email(),
		PhoneNumber: c.PhoneNumber(),
		Description: c.Description(),
		Website:     c.Website(),
	}
	for i := range c.Dentists() {
		d := &c.Dentists()[i]
		doc.Dentists = append(doc.Dentists, dentistDoc{
			Name:        d.Name(),
			Email:       d.Email(),
			PhoneNumber: d.PhoneNumber(),
		})
	}
	return doc
}

func (doc *clinicDoc) toClinic(id string) domclinic.Clinic {
	dentists := make([]domclinic.Dentist, 0, len(doc.Dentists))
	for _, d := range doc.Dentists {
		dentists = append(dentists, domclinic.ReconstructDentist(d.Name, d.Email, d.PhoneNumber))
	}
	return domclinic.Reconstruct(
		id, doc.Name, doc.Address, doc.Email, doc.PhoneNumber,
		doc.Description, doc.Website, dentists,
	)
}

// unwrapDoc parses a JSON.GET "$" result, which wraps the document in a
// one-element array.
func unwrapDoc(raw []byte) (clinicDoc, error) {
	var docs []clinicDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return clinicDoc{}, fmt.Errorf("unmarshal: %w", err)
	}
	if len(docs) == 0 {
		return clinicDoc{}, fmt.Errorf("empty document")
	}
	return docs[0], nil
}
