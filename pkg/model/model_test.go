package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTasksIndexByID(t *testing.T) {
	ts := Tasks{{ID: 4}, {ID: 7}, {ID: 9}}
	assert.Equal(t, 1, ts.IndexByID(7))
	assert.Equal(t, -1, ts.IndexByID(5))
	assert.Equal(t, -1, Tasks(nil).IndexByID(1))
}

func TestTasksCompletedCount(t *testing.T) {
	ts := Tasks{{Completed: true}, {}, {Completed: true}}
	assert.Equal(t, 2, ts.CompletedCount())
	assert.Zero(t, Tasks(nil).CompletedCount())
}

func TestUserWireShape(t *testing.T) {
	raw := `{
	  "id": 1, "name": "Nora Vance", "username": "nvance",
	  "email": "nora@vance.dev", "phone": "1-555", "website": "vance.dev",
	  "address": {"street": "Victor Plains", "suite": "Suite 879",
	    "city": "Wisokyburgh", "zipcode": "90566-7771",
	    "geo": {"lat": "-43.9509", "lng": "-34.4618"}},
	  "company": {"name": "Deckow-Crist",
	    "catchPhrase": "Proactive didactic contingency",
	    "bs": "synergize scalable supply-chains"}
	}`
	var u User
	require.NoError(t, json.Unmarshal([]byte(raw), &u))
	assert.Equal(t, "Wisokyburgh", u.Address.City)
	assert.Equal(t, "-34.4618", u.Address.Geo.Lng)
	assert.Equal(t, "synergize scalable supply-chains", u.Company.BS)
}
