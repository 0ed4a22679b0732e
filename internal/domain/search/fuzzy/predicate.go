package fuzzy

import (
	"strings"

	"github.com/novadent/clindex/internal/domain/clinic"
	"github.com/novadent/clindex/internal/domain/search/query"
)

// predicate decides whether a clinic stays in the candidate set.
type predicate func(c *clinic.Clinic) bool

// fieldMatches reports whether a field value matches a term: either the
// value starts with the term (ordinal, case-sensitive) or the edit distance
// is within maxDistance. An absent field value never matches a non-empty
// term.
func fieldMatches(value, term string, maxDistance int) bool {
	if value == "" {
		return false
	}
	if strings.HasPrefix(value, term) {
		return true
	}
	return Distance(value, term) <= maxDistance
}

// predicates builds one predicate per supplied term. Absent terms impose no
// constraint; the candidate set is the intersection of all returned
// predicates.
func (r *Ranker) predicates(q *query.Query) []predicate {
	var ps []predicate

	if term := q.General(); term != "" {
		ps = append(ps, r.generalPredicate(term))
	}
	if term := q.Name(); term != "" {
		ps = append(ps, func(c *clinic.Clinic) bool {
			return r.matches(c.Name(), term) || r.anyDentist(c, (*clinic.Dentist).Name, term)
		})
	}
	if term := q.Email(); term != "" {
		ps = append(ps, func(c *clinic.Clinic) bool {
			return r.matches(c.Email(), term) || r.anyDentist(c, (*clinic.Dentist).Email, term)
		})
	}
	if term := q.PhoneNumber(); term != "" {
		ps = append(ps, func(c *clinic.Clinic) bool {
			return r.matches(c.PhoneNumber(), term) ||
				r.anyDentist(c, (*clinic.Dentist).PhoneNumber, term)
		})
	}
	if term := q.Address(); term != "" {
		ps = append(ps, func(c *clinic.Clinic) bool { return r.matches(c.Address(), term) })
	}
	if term := q.Description(); term != "" {
		ps = append(ps, func(c *clinic.Clinic) bool { return r.matches(c.Description(), term) })
	}
	if term := q.Website(); term != "" {
		ps = append(ps, func(c *clinic.Clinic) bool { return r.matches(c.Website(), term) })
	}

	return ps
}

// generalPredicate matches the free-text term against every clinic field and
// every dentist's name, email, and phone.
func (r *Ranker) generalPredicate(term string) predicate {
	return func(c *clinic.Clinic) bool {
		if r.matches(c.Name(), term) ||
			r.matches(c.Address(), term) ||
			r.matches(c.Email(), term) ||
			r.matches(c.PhoneNumber(), term) ||
			r.matches(c.Description(), term) ||
			r.matches(c.Website(), term) {
			return true
		}
		dentists := c.Dentists()
		for i := range dentists {
			d := &dentists[i]
			if r.matches(d.Name(), term) ||
				r.matches(d.Email(), term) ||
				r.matches(d.PhoneNumber(), term) {
				return true
			}
		}
		return false
	}
}

func (r *Ranker) matches(value, term string) bool {
	return fieldMatches(value, term, r.cfg.MaxDistance)
}

// anyDentist reports whether any dentist field selected by get matches term.
func (r *Ranker) anyDentist(c *clinic.Clinic, get func(*clinic.Dentist) string, term string) bool {
	dentists := c.Dentists()
	for i := range dentists {
		if r.matches(get(&dentists[i]), term) {
			return true
		}
	}
	return false
}
