package database

import (
	"testing"
	"time"

	"polyping/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(MemoryPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.InitSchema(); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}
	return db
}

func TestSaveAndGetResultSet(t *testing.T) {
	db := newTestDB(t)

	gamma := models.Endpoint{Name: "Gamma API", URL: "https://gamma.example.com"}
	clob := models.Endpoint{Name: "CLOB API", URL: "https://clob.example.com"}
	data := models.Endpoint{Name: "Data API", URL: "https://data.example.com"}

	results := []models.PingResult{
		{Endpoint: gamma, Round: 1, Success: true, RTT: 100.4, StatusCode: 200},
		{Endpoint: clob, Round: 1, Success: false, ErrorMessage: "connection refused"},
		{Endpoint: gamma, Round: 2, Success: false, ErrorMessage: "timeout"},
		{Endpoint: gamma, Round: 3, Success: true, RTT: 50, StatusCode: 404},
		{Endpoint: clob, Round: 2, Success: false, ErrorMessage: "connection refused"},
	}
	for _, r := range results {
		r.Timestamp = time.Now()
		if err := db.SaveResult(r); err != nil {
			t.Fatalf("SaveResult: %v", err)
		}
	}

	rs, err := db.GetResultSet([]models.Endpoint{gamma, clob, data})
	if err != nil {
		t.Fatalf("GetResultSet: %v", err)
	}

	if len(rs) != 3 {
		t.Fatalf("got %d entries, want 3", len(rs))
	}
	if rs[0].Endpoint != gamma || rs[1].Endpoint != clob || rs[2].Endpoint != data {
		t.Fatalf("endpoint order not preserved: %+v", rs)
	}

	got := rs.Samples("Gamma API")
	want := []float64{100.4, 50}
	if len(got) != len(want) {
		t.Fatalf("gamma samples = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("gamma sample %d = %v, want %v", i, got[i], want[i])
		}
	}

	if n := len(rs.Samples("CLOB API")); n != 0 {
		t.Errorf("failed rounds produced %d samples", n)
	}
	if n := len(rs.Samples("Data API")); n != 0 {
		t.Errorf("unprobed endpoint produced %d samples", n)
	}
}

func TestFailedRoundsAreRecorded(t *testing.T) {
	db := newTestDB(t)
	ep := models.Endpoint{Name: "flaky", URL: "https://flaky.example.com"}

	for round := 1; round <= 4; round++ {
		r := models.PingResult{Timestamp: time.Now(), Endpoint: ep, Round: round}
		if round%2 == 0 {
			r.Success, r.RTT, r.StatusCode = true, float64(round*10), 200
		} else {
			r.ErrorMessage = "boom"
		}
		if err := db.SaveResult(r); err != nil {
			t.Fatalf("SaveResult: %v", err)
		}
	}

	total, err := db.CountRounds("flaky")
	if err != nil {
		t.Fatalf("CountRounds: %v", err)
	}
	if total != 4 {
		t.Errorf("CountRounds = %d, want 4", total)
	}

	samples, err := db.GetSamples("flaky")
	if err != nil {
		t.Fatalf("GetSamples: %v", err)
	}
	if len(samples) != 2 || samples[0] != 20 || samples[1] != 40 {
		t.Errorf("samples = %v, want [20 40]", samples)
	}
}

func TestMemoryDatabasesAreIsolated(t *testing.T) {
	first := newTestDB(t)
	ep := models.Endpoint{Name: "a", URL: "https://a.example.com"}
	if err := first.SaveResult(models.PingResult{Timestamp: time.Now(), Endpoint: ep, Round: 1, Success: true, RTT: 1}); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}

	second := newTestDB(t)
	samples, err := second.GetSamples("a")
	if err != nil {
		t.Fatalf("GetSamples: %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("fresh database has samples %v", samples)
	}
}
