package tracker

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSnapshot_FirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")

	snap, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot() returned error: %v", err)
	}
	if err := snap.State.Check(); err != nil {
		t.Errorf("first-run state does not check: %v", err)
	}
	if _, ok := snap.State.FindFund("Operating"); !ok {
		t.Errorf("first-run state misses the seeded %q fund", "Operating")
	}
}

func TestLoadSnapshot_UnusableDataFallsBack(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{name: "not json at all", payload: "once upon a time"},
		{name: "wrong version", payload: `{"version": 99, "state": {}, "budgets": []}`},
		{
			// a fund whose balance does not match its flows is not usable data.
			name: "incoherent fund",
			payload: `{"version": 1, "state": {"funds": {"a": {"id":"a","name":"A",
				"currentBalance":10,"lifetimeInflow":5,"lifetimeOutflow":0,
				"createdAt":"2025-03-01T08:00:00Z","updatedAt":"2025-03-01T08:00:00Z"}},
				"transactions": [], "profitDistribution": [], "taxEnabled": false,
				"lastUpdated": "2025-03-01T08:00:00Z"}, "budgets": []}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "snapshot.json")
			if err := os.WriteFile(path, []byte(tc.payload), 0644); err != nil {
				t.Fatal(err)
			}
			snap, err := LoadSnapshot(path)
			if err != nil {
				t.Fatalf("LoadSnapshot() returned error: %v, want a default snapshot", err)
			}
			if err := snap.State.Check(); err != nil {
				t.Errorf("fallback state does not check: %v", err)
			}
			if _, ok := snap.State.Fund("operating"); !ok {
				t.Errorf("fallback state is not the default one")
			}
		})
	}
}

func TestSaveSnapshot_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books", "snapshot.json")

	s := DefaultState()
	s, _, err := s.Submit(NewIncome(Today(), "first sale", NO(1000), NO(0)))
	if err != nil {
		t.Fatalf("Submit() returned error: %v", err)
	}
	snap := &Snapshot{State: s, Budgets: Budgets{NewBudget("Office", "", NO(300), Monthly)}}

	if err := SaveSnapshot(path, snap); err != nil {
		t.Fatalf("SaveSnapshot() returned error: %v", err)
	}
	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot() returned error: %v", err)
	}

	operating, _ := loaded.State.Fund("operating")
	if operating.Balance.String() != "500.00" {
		t.Errorf("operating balance = %s, want 500.00 (50%% of 1000)", operating.Balance)
	}
	if len(loaded.Budgets) != 1 || loaded.Budgets[0].Name != "Office" {
		t.Errorf("budgets = %v, want the Office budget", loaded.Budgets)
	}
	if loaded.State.TaxEnabled() != s.TaxEnabled() {
		t.Errorf("taxEnabled = %v, want %v", loaded.State.TaxEnabled(), s.TaxEnabled())
	}
}

func TestSaveSnapshot_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")

	if err := SaveSnapshot(path, &Snapshot{State: DefaultState()}); err != nil {
		t.Fatalf("SaveSnapshot() returned error: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "snapshot.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("snapshot directory holds %v, want only snapshot.json", names)
	}
}
