package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/novadent/clindex/internal/domain"
	domclinic "github.com/novadent/clindex/internal/domain/clinic"
	"github.com/novadent/clindex/internal/domain/search/fuzzy"
	directoryuc "github.com/novadent/clindex/internal/usecase/directory"
	healthuc "github.com/novadent/clindex/internal/usecase/health"
	searchuc "github.com/novadent/clindex/internal/usecase/search"
)

type memRepo struct {
	clinics map[string]domclinic.Clinic
}

func newMemRepo() *memRepo {
	return &memRepo{clinics: make(map[string]domclinic.Clinic)}
}

func (m *memRepo) Upsert(_ context.Context, c *domclinic.Clinic) (bool, error) {
	_, exists := m.clinics[c.ID()]
	m.clinics[c.ID()] = *c
	return !exists, nil
}

func (m *memRepo) Get(_ context.Context, id string) (domclinic.Clinic, error) {
	c, ok := m.clinics[id]
	if !ok {
		return domclinic.Clinic{}, domain.ErrClinicNotFound
	}
	return c, nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.clinics[id]; !ok {
		return domain.ErrClinicNotFound
	}
	delete(m.clinics, id)
	return nil
}

func (m *memRepo) List(_ context.Context) ([]domclinic.Clinic, error) {
	ids := make([]string, 0, len(m.clinics))
	for id := range m.clinics {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]domclinic.Clinic, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.clinics[id])
	}
	return out, nil
}

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(_ context.Context) error { return s.err }

func newTestRouter(repo *memRepo, pinger *stubPinger) http.Handler {
	directory := directoryuc.New(repo)
	search := searchuc.New(repo, fuzzy.NewRanker(fuzzy.DefaultConfig()))
	health := healthuc.New(pinger)

	srv := NewServer(directory, search, health, zap.NewNop())
	r := chirouter.NewRouter()
	srv.Register(r)
	return r
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeClinic(t *testing.T, rr *httptest.ResponseRecorder) ClinicDTO {
	t.Helper()
	var dto ClinicDTO
	if err := json.NewDecoder(rr.Body).Decode(&dto); err != nil {
		t.Fatalf("decode clinic: %v", err)
	}
	return dto
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return resp
}

func TestCreateClinic_GeneratesID(t *testing.T) {
	router := newTestRouter(newMemRepo(), &stubPinger{})

	rr := doJSON(t, router, "POST", "/api/v1/clinics/", UpsertClinicRequest{
		Name:    "Lakeside Dental",
		Address: "12 Shore Rd",
		Dentists: []DentistDTO{
			{Name: "Dr. Adams", Email: "adams@lakeside.example"},
		},
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}
	dto := decodeClinic(t, rr)
	if dto.ID == "" {
		t.Error("expected a generated ID")
	}
	if loc := rr.Header().Get("Location"); !strings.HasPrefix(loc, "/api/v1/clinics/") {
		t.Errorf("Location = %q", loc)
	}
	if len(dto.Dentists) != 1 || dto.Dentists[0].Name != "Dr. Adams" {
		t.Errorf("dentists = %+v", dto.Dentists)
	}
}

func TestCreateClinic_DuplicateID_409(t *testing.T) {
	router := newTestRouter(newMemRepo(), &stubPinger{})

	req := UpsertClinicRequest{ID: "c1", Name: "Lakeside Dental", Address: "12 Shore Rd"}
	if rr := doJSON(t, router, "POST", "/api/v1/clinics/", req); rr.Code != http.StatusCreated {
		t.Fatalf("first create: %d", rr.Code)
	}

	rr := doJSON(t, router, "POST", "/api/v1/clinics/", req)
	if rr.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusConflict)
	}
}

func TestCreateClinic_MissingName_400(t *testing.T) {
	router := newTestRouter(newMemRepo(), &stubPinger{})

	rr := doJSON(t, router, "POST", "/api/v1/clinics/", UpsertClinicRequest{Address: "12 Shore Rd"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if resp := decodeError(t, rr); resp.Code != codeValidationFailed {
		t.Errorf("code = %s, want %s", resp.Code, codeValidationFailed)
	}
}

func TestCreateClinic_MalformedBody_400(t *testing.T) {
	router := newTestRouter(newMemRepo(), &stubPinger{})

	req := httptest.NewRequest("POST", "/api/v1/clinics/", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if resp := decodeError(t, rr); resp.Code != codeBadRequest {
		t.Errorf("code = %s, want %s", resp.Code, codeBadRequest)
	}
}

func TestUpsertClinic_CreateThenUpdate(t *testing.T) {
	router := newTestRouter(newMemRepo(), &stubPinger{})

	req := UpsertClinicRequest{Name: "Lakeside Dental", Address: "12 Shore Rd"}
	rr := doJSON(t, router, "PUT", "/api/v1/clinics/c1", req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("first put: %d, want %d", rr.Code, http.StatusCreated)
	}
	if dto := decodeClinic(t, rr); dto.ID != "c1" {
		t.Errorf("id = %q, want c1", dto.ID)
	}

	rr = doJSON(t, router, "PUT", "/api/v1/clinics/c1", req)
	if rr.Code != http.StatusOK {
		t.Errorf("second put: %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestUpsertClinic_BodyIDMismatch_400(t *testing.T) {
	router := newTestRouter(newMemRepo(), &stubPinger{})

	rr := doJSON(t, router, "PUT", "/api/v1/clinics/c1", UpsertClinicRequest{
		ID: "c2", Name: "Lakeside Dental", Address: "12 Shore Rd",
	})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestGetClinic_NotFound_404(t *testing.T) {
	router := newTestRouter(newMemRepo(), &stubPinger{})

	rr := doJSON(t, router, "GET", "/api/v1/clinics/missing", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if resp := decodeError(t, rr); resp.Code != codeClinicNotFound {
		t.Errorf("code = %s, want %s", resp.Code, codeClinicNotFound)
	}
}

func TestDeleteClinic(t *testing.T) {
	router := newTestRouter(newMemRepo(), &stubPinger{})

	req := UpsertClinicRequest{Name: "Lakeside Dental", Address: "12 Shore Rd"}
	if rr := doJSON(t, router, "PUT", "/api/v1/clinics/c1", req); rr.Code != http.StatusCreated {
		t.Fatalf("put: %d", rr.Code)
	}

	if rr := doJSON(t, router, "DELETE", "/api/v1/clinics/c1", nil); rr.Code != http.StatusNoContent {
		t.Errorf("delete: %d, want %d", rr.Code, http.StatusNoContent)
	}
	if rr := doJSON(t, router, "DELETE", "/api/v1/clinics/c1", nil); rr.Code != http.StatusNotFound {
		t.Errorf("second delete: %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestListClinics_Pagination(t *testing.T) {
	router := newTestRouter(newMemRepo(), &stubPinger{})

	for _, id := range []string{"c1", "c2", "c3"} {
		req := UpsertClinicRequest{Name: "Clinic " + id, Address: "1 Main St"}
		if rr := doJSON(t, router, "PUT", "/api/v1/clinics/"+id, req); rr.Code != http.StatusCreated {
			t.Fatalf("put %s: %d", id, rr.Code)
		}
	}

	rr := doJSON(t, router, "GET", "/api/v1/clinics/?limit=2", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rr.Code, rr.Body.String())
	}

	var page ClinicCursorListResponse
	if err := json.NewDecoder(rr.Body).Decode(&page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page.Items) != 2 || !page.HasMore || page.NextCursor == nil {
		t.Fatalf("page = %+v", page)
	}

	rr = doJSON(t, router, "GET", "/api/v1/clinics/?limit=2&cursor="+*page.NextCursor, nil)
	if err := json.NewDecoder(rr.Body).Decode(&page); err != nil {
		t.Fatalf("decode second page: %v", err)
	}
	if len(page.Items) != 1 || page.HasMore {
		t.Errorf("second page = %+v", page)
	}
	if page.Items[0].ID != "c3" {
		t.Errorf("second page id = %q, want c3", page.Items[0].ID)
	}
}

func TestListClinics_BadCursor_400(t *testing.T) {
	router := newTestRouter(newMemRepo(), &stubPinger{})

	rr := doJSON(t, router, "GET", "/api/v1/clinics/?cursor=abc", nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestSearchClinics_RanksByScore(t *testing.T) {
	router := newTestRouter(newMemRepo(), &stubPinger{})

	seeds := map[string]string{
		"exact": "Apple Dental",
		"close": "Apply Dental",
		"far":   "Harbor Vet",
	}
	for id, name := range seeds {
		req := UpsertClinicRequest{Name: name, Address: "1 Main St"}
		if rr := doJSON(t, router, "PUT", "/api/v1/clinics/"+id, req); rr.Code != http.StatusCreated {
			t.Fatalf("put %s: %d", id, rr.Code)
		}
	}

	rr := doJSON(t, router, "GET", "/api/v1/clinics/search?q=Apple+Dental", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rr.Code, rr.Body.String())
	}

	var resp SearchResultListResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 2 || len(resp.Items) != 2 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Items[0].ID != "exact" || resp.Items[1].ID != "close" {
		t.Errorf("order = [%s %s], want [exact close]", resp.Items[0].ID, resp.Items[1].ID)
	}
}

func TestSearchClinics_FieldTerms(t *testing.T) {
	router := newTestRouter(newMemRepo(), &stubPinger{})

	for id, email := range map[string]string{
		"a": "front@lakeside.example",
		"b": "care@harbor.example",
	} {
		req := UpsertClinicRequest{Name: "Clinic " + id, Address: "1 Main St", Email: email}
		if rr := doJSON(t, router, "PUT", "/api/v1/clinics/"+id, req); rr.Code != http.StatusCreated {
			t.Fatalf("put %s: %d", id, rr.Code)
		}
	}

	rr := doJSON(t, router, "GET", "/api/v1/clinics/search?email=front", nil)
	var resp SearchResultListResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 || resp.Items[0].ID != "a" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestSearchClinics_BadLimit_400(t *testing.T) {
	router := newTestRouter(newMemRepo(), &stubPinger{})

	for _, limit := range []string{"abc", "0", "-1"} {
		rr := doJSON(t, router, "GET", "/api/v1/clinics/search?limit="+limit, nil)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("limit %q: status = %d, want %d", limit, rr.Code, http.StatusBadRequest)
		}
	}
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(newMemRepo(), &stubPinger{})

	rr := doJSON(t, router, "GET", "/health", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.Checks["database"] != "ok" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestHealthCheck_Degraded_503(t *testing.T) {
	router := newTestRouter(newMemRepo(), &stubPinger{err: errors.New("down")})

	rr := doJSON(t, router, "GET", "/health", nil)
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}
