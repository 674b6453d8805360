package fakeapi

import "github.com/taskboard/taskboard.go/pkg/model"

// SampleUsers returns a small deterministic user set for tests.
func SampleUsers() []model.User {
	return []model.User{
		{
			ID:       1,
			Name:     "Nora Vance",
			Username: "nvance",
			Email:    "nora@vance.dev",
			Phone:    "1-555-010-0001",
			Website:  "vance.dev",
			Address: model.Address{
				Street:  "Victor Plains",
				Suite:   "Suite 879",
				City:    "Wisokyburgh",
				Zipcode: "90566-7771",
				Geo:     model.Geo{Lat: "-43.9509", Lng: "-34.4618"},
			},
			Company: model.Company{
				Name:        "Deckow-Crist",
				CatchPhrase: "Proactive didactic contingency",
				BS:          "synergize scalable supply-chains",
			},
		},
		{
			ID:       2,
			Name:     "Abel Okafor",
			Username: "aokafor",
			Email:    "abel@okafor.io",
			Phone:    "1-555-010-0002",
			Website:  "okafor.io",
			Address: model.Address{
				Street:  "Douglas Extension",
				Suite:   "Suite 847",
				City:    "McKenziehaven",
				Zipcode: "59590-4157",
				Geo:     model.Geo{Lat: "-68.6102", Lng: "-47.0653"},
			},
			Company: model.Company{
				Name:        "Romaguera-Jacobson",
				CatchPhrase: "Face to face bifurcated interface",
				BS:          "e-enable strategic applications",
			},
		},
		{
			ID:       3,
			Name:     "Mina Castellanos",
			Username: "minac",
			Email:    "mina@castellanos.net",
			Phone:    "1-555-010-0003",
			Website:  "castellanos.net",
			Address: model.Address{
				Street:  "Hoeger Mall",
				Suite:   "Apt. 692",
				City:    "South Elvis",
				Zipcode: "53919-4257",
				Geo:     model.Geo{Lat: "29.4572", Lng: "-164.2990"},
			},
			Company: model.Company{
				Name:        "Robel-Corkery",
				CatchPhrase: "Multi-tiered zero tolerance productivity",
				BS:          "transition cutting-edge web services",
			},
		},
	}
}

// SampleTasks returns task collections keyed by the SampleUsers ids.
func SampleTasks() map[int]model.Tasks {
	return map[int]model.Tasks{
		1: {
			{ID: 1, UserID: 1, Title: "delectus aut autem", Completed: false},
			{ID: 2, UserID: 1, Title: "quis ut nam facilis", Completed: true},
			{ID: 3, UserID: 1, Title: "fugiat veniam minus", Completed: false},
		},
		2: {
			{ID: 1, UserID: 2, Title: "suscipit repellat esse", Completed: true},
			{ID: 2, UserID: 2, Title: "distinctio vitae autem", Completed: true},
		},
		3: {},
	}
}
