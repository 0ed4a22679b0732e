// Package query holds the validated clinic search query: an optional
// free-text term plus optional per-field terms. An empty term imposes no
// constraint and contributes nothing to ranking.
package query

import "fmt"

// MaxTermLength is the maximum allowed length of any search term.
const MaxTermLength = 256

// Query is a validated search query. The zero value matches everything.
type Query struct {
	general     string
	name        string
	email       string
	phoneNumber string
	address     string
	description string
	website     string
}

// Terms carries the raw search terms into New. Empty strings mean "absent".
type Terms struct {
	General     string
	Name        string
	Email       string
	PhoneNumber string
	Address     string
	Description string
	Website     string
}

// New validates and creates a Query from raw terms.
func New(t Terms) (Query, error) {
	for _, term := range []string{
		t.General, t.Name, t.Email, t.PhoneNumber, t.Address, t.Description, t.Website,
	} {
		if len(term) > MaxTermLength {
			return Query{}, fmt.Errorf("search term too long (max %d chars)", MaxTermLength)
		}
	}
	return Query{
		general:     t.General,
		name:        t.Name,
		email:       t.Email,
		phoneNumber: t.PhoneNumber,
		address:     t.Address,
		description: t.Description,
		website:     t.Website,
	}, nil
}

// General returns the free-text term ("" when absent).
func (q *Query) General() string { return q.general }

// Name returns the clinic/dentist name term.
func (q *Query) Name() string { return q.name }

// Email returns the clinic/dentist email term.
func (q *Query) Email() string { return q.email }

// PhoneNumber returns the clinic/dentist phone term.
func (q *Query) PhoneNumber() string { return q.phoneNumber }

// Address returns the clinic address term.
func (q *Query) Address() string { return q.address }

// Description returns the clinic description term.
func (q *Query) Description() string { return q.description }

// Website returns the clinic website term.
func (q *Query) Website() string { return q.website }

// IsEmpty reports whether no term is supplied at all.
func (q *Query) IsEmpty() bool {
	return q.general == "" && q.name == "" && q.email == "" && q.phoneNumber == "" &&
		q.address == "" && q.description == "" && q.website == ""
}

// HasGeneral reports whether a free-text term is supplied.
func (q *Query) HasGeneral() bool { return q.general != "" }
