package clindex

import (
	"context"

	domclinic "github.com/novadent/clindex/internal/domain/clinic"
	"github.com/novadent/clindex/internal/domain/search/query"
	healthuc "github.com/novadent/clindex/internal/usecase/health"
)

// --- directoryUseCase mock ---

type mockDirectoryUC struct {
	createFn func(ctx context.Context, c domclinic.Clinic) (domclinic.Clinic, error)
	upsertFn func(ctx context.Context, c domclinic.Clinic) (domclinic.Clinic, bool, error)
	getFn    func(ctx context.Context, id string) (domclinic.Clinic, error)
	deleteFn func(ctx context.Context, id string) error
	listFn   func(ctx context.Context, cursor string, limit int) ([]domclinic.Clinic, string, error)
}

func (m *mockDirectoryUC) Create(ctx context.Context, c domclinic.Clinic) (domclinic.Clinic, error) {
	return m.createFn(ctx, c)
}

func (m *mockDirectoryUC) Upsert(ctx context.Context, c domclinic.Clinic) (domclinic.Clinic, bool, error) {
	return m.upsertFn(ctx, c)
}

func (m *mockDirectoryUC) Get(ctx context.Context, id string) (domclinic.Clinic, error) {
	return m.getFn(ctx, id)
}

func (m *mockDirectoryUC) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockDirectoryUC) List(
	ctx context.Context, cursor string, limit int,
) ([]domclinic.Clinic, string, error) {
	return m.listFn(ctx, cursor, limit)
}

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn func(ctx context.Context, q query.Query, limit int) ([]domclinic.Clinic, error)
}

func (m *mockSearchUC) Search(
	ctx context.Context, q query.Query, limit int,
) ([]domclinic.Clinic, error) {
	return m.searchFn(ctx, q, limit)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	checkFn func(ctx context.Context) healthuc.Report
}

func (m *mockHealthUC) Check(ctx context.Context) healthuc.Report {
	return m.checkFn(ctx)
}

// --- helpers ---

func testClient(
	dirSvc directoryUseCase,
	searchSvc searchUseCase,
	healthSvc healthUseCase,
) *Client {
	return &Client{
		dirSvc:    dirSvc,
		searchSvc: searchSvc,
		healthSvc: healthSvc,
	}
}
