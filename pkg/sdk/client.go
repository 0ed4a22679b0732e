package clindex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/novadent/clindex/internal/db"
	dbRedis "github.com/novadent/clindex/internal/db/redis"
	domclinic "github.com/novadent/clindex/internal/domain/clinic"
	"github.com/novadent/clindex/internal/domain/search/fuzzy"
	"github.com/novadent/clindex/internal/domain/search/query"
	clinicrepo "github.com/novadent/clindex/internal/repository/clinic"
	directoryuc "github.com/novadent/clindex/internal/usecase/directory"
	healthuc "github.com/novadent/clindex/internal/usecase/health"
	searchuc "github.com/novadent/clindex/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces so tests can substitute the services.
type directoryUseCase interface {
	Create(ctx context.Context, c domclinic.Clinic) (domclinic.Clinic, error)
	Upsert(ctx context.Context, c domclinic.Clinic) (domclinic.Clinic, bool, error)
	Get(ctx context.Context, id string) (domclinic.Clinic, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, cursor string, limit int) ([]domclinic.Clinic, string, error)
}

type searchUseCase interface {
	Search(ctx context.Context, q query.Query, limit int) ([]domclinic.Clinic, error)
}

// Client is the clindex SDK entry point.
type Client struct {
	store     db.Store
	dirSvc    directoryUseCase
	searchSvc searchUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a clindex Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("clindex: database address required (use WithValkey or WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("clindex: create store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("clindex: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(store, cfg, obs), nil
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	repo := clinicrepo.New(store, cfg.keyPrefix)

	ranker := fuzzy.NewRanker(fuzzy.Config{
		NameWeight:  cfg.nameWeight,
		FieldWeight: cfg.fieldWeight,
		MaxDistance: cfg.maxDistance,
	})

	dirSvc := directoryuc.New(repo).
		WithPagination(cfg.defaultLimit, cfg.maxLimit)
	searchSvc := searchuc.New(repo, ranker).
		WithLimits(cfg.defaultLimit, cfg.maxLimit).
		WithMaxCandidates(cfg.maxCandidates)
	healthSvc := healthuc.New(store)

	return &Client{
		store:     store,
		dirSvc:    dirSvc,
		searchSvc: searchSvc,
		healthSvc: healthSvc,
		obs:       obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Clinics returns the clinic directory service.
func (c *Client) Clinics() *ClinicService {
	return &ClinicService{svc: c.dirSvc, obs: c.obs}
}

// Search ranks stored clinics against q and returns up to limit results
// ordered by relevance. A limit <= 0 uses the configured default.
func (c *Client) Search(ctx context.Context, q Query, limit int) (clinics []Clinic, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", start, err) }()

	domQuery, err := query.New(query.Terms{
		General:     q.General,
		Name:        q.Name,
		Email:       q.Email,
		PhoneNumber: q.PhoneNumber,
		Address:     q.Address,
		Description: q.Description,
		Website:     q.Website,
	})
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	ranked, err := c.searchSvc.Search(ctx, domQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	clinics = make([]Clinic, len(ranked))
	for i := range ranked {
		clinics[i] = clinicFromDomain(&ranked[i])
	}
	return clinics, nil
}
