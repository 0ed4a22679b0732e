// Package clindex provides an embeddable Go client for the clindex clinic
// directory, backed by Valkey or Redis with JSON support.
//
//	client, _ := clindex.New(ctx, clindex.WithValkey("localhost:6379", ""))
//	defer client.Close()
//
//	stored, _ := client.Clinics().Create(ctx, clindex.Clinic{
//	    Name:    "Lakeside Dental",
//	    Address: "12 Shore Rd",
//	    Dentists: []clindex.Dentist{
//	        {Name: "Dr. Adams", Email: "adams@lakeside.example"},
//	    },
//	})
//
//	results, _ := client.Search(ctx, clindex.Query{General: "lakeside"}, 10)
//
// Search tolerates typos: a term matches a field when it is a prefix of the
// field value or within a small edit distance of it, and results come back
// ordered by relevance.
package clindex
