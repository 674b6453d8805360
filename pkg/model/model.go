// Package model holds the wire-level entities served by the remote mock API.
package model

// Geo is a latitude/longitude pair. The remote serves both as strings.
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Address is the postal address attached to a user profile.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

// Company describes the business a user works for.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// User is a remote user profile. Users are immutable once fetched; they are
// never created or deleted locally.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Address  Address `json:"address"`
	Company  Company `json:"company"`
}

// Task is a to-do item owned by exactly one user. Task ids are unique within
// the owning user's collection only; they carry no global meaning.
type Task struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Tasks is an ordered task collection, locally created entries first.
type Tasks []Task

// IndexByID returns the position of the task with the given id, or -1.
func (ts Tasks) IndexByID(id int) int {
	for i := range ts {
		if ts[i].ID == id {
			return i
		}
	}
	return -1
}

// CompletedCount returns how many tasks in the collection are done.
func (ts Tasks) CompletedCount() int {
	n := 0
	for i := range ts {
		if ts[i].Completed {
			n++
		}
	}
	return n
}
