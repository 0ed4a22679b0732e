package clindex

// Dentist is a practitioner attached to a clinic.
type Dentist struct {
	Name        string
	Email       string
	PhoneNumber string
}

// Clinic is the public clinic record. Name and Address are required;
// the rest is optional.
type Clinic struct {
	ID          string
	Name        string
	Address     string
	Email       string
	PhoneNumber string
	Description string
	Website     string
	Dentists    []Dentist
}

// Query holds fuzzy search terms. General matches across every clinic and
// dentist field and drives the relevance order; the named terms narrow the
// result set to clinics matching each of them.
type Query struct {
	General     string
	Name        string
	Email       string
	PhoneNumber string
	Address     string
	Description string
	Website     string
}

// ListResult is a paginated list of clinics.
type ListResult struct {
	Clinics    []Clinic
	NextCursor string
}
