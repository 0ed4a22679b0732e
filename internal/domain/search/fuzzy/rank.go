package fuzzy

import (
	"math"
	"sort"

	"github.com/novadent/clindex/internal/domain/clinic"
	"github.com/novadent/clindex/internal/domain/search/query"
)

// Ranker filters clinics against a query and orders free-text results by
// weighted edit distance. It is stateless and safe for concurrent use.
type Ranker struct {
	cfg Config
}

// NewRanker creates a Ranker. Zero config fields fall back to the reference
// values.
func NewRanker(cfg Config) *Ranker {
	return &Ranker{cfg: cfg.withDefaults()}
}

// Rank returns the clinics matching q. When a free-text term is present the
// result is ordered by ascending weighted distance (stable on ties);
// otherwise input order is preserved. The input slice is never mutated.
func (r *Ranker) Rank(clinics []clinic.Clinic, q query.Query) []clinic.Clinic {
	ps := r.predicates(&q)

	matched := make([]clinic.Clinic, 0, len(clinics))
	for i := range clinics {
		if matchesAll(&clinics[i], ps) {
			matched = append(matched, clinics[i])
		}
	}

	if !q.HasGeneral() {
		return matched
	}

	scores := make([]int, len(matched))
	for i := range matched {
		scores[i] = r.score(&matched[i], &q)
	}
	sort.SliceStable(matched, func(i, j int) bool { return scores[i] < scores[j] })

	return matched
}

func matchesAll(c *clinic.Clinic, ps []predicate) bool {
	for _, p := range ps {
		if !p(c) {
			return false
		}
	}
	return true
}

// score sums the weighted distances of the clinic's six own fields against
// the free-text term and against their per-field terms. Dentist fields do
// not contribute: a clinic admitted through a dentist match is ranked on its
// own fields alone. Clients depend on the resulting order, so the
// asymmetry is load-bearing.
func (r *Ranker) score(c *clinic.Clinic, q *query.Query) int {
	general := q.General()

	s := r.weightedDistance(c.Name(), general, r.cfg.NameWeight)
	s += r.weightedDistance(c.Email(), general, r.cfg.FieldWeight)
	s += r.weightedDistance(c.PhoneNumber(), general, r.cfg.FieldWeight)
	s += r.weightedDistance(c.Address(), general, r.cfg.FieldWeight)
	s += r.weightedDistance(c.Description(), general, r.cfg.FieldWeight)
	s += r.weightedDistance(c.Website(), general, r.cfg.FieldWeight)

	s += r.weightedDistance(c.Name(), q.Name(), r.cfg.NameWeight)
	s += r.weightedDistance(c.Email(), q.Email(), r.cfg.FieldWeight)
	s += r.weightedDistance(c.PhoneNumber(), q.PhoneNumber(), r.cfg.FieldWeight)
	s += r.weightedDistance(c.Address(), q.Address(), r.cfg.FieldWeight)
	s += r.weightedDistance(c.Description(), q.Description(), r.cfg.FieldWeight)
	s += r.weightedDistance(c.Website(), q.Website(), r.cfg.FieldWeight)

	return s
}

// weightedDistance scales the edit distance by the field weight, rounded to
// the nearest integer. An empty term contributes zero.
func (r *Ranker) weightedDistance(value, term string, weight float64) int {
	if term == "" {
		return 0
	}
	return int(math.Round(float64(Distance(value, term)) * weight))
}
