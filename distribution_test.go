package tracker

import (
	"errors"
	"testing"
)

func TestDistribution_Check(t *testing.T) {
	testCases := []struct {
		name    string
		dist    Distribution
		wantErr error // nil means the distribution is valid
	}{
		{
			name: "single share of 100 is valid",
			dist: Distribution{{FundID: "a", Percent: 100}},
		},
		{
			name: "complementary cents sum to exactly 100",
			dist: Distribution{{FundID: "a", Percent: 33.33}, {FundID: "b", Percent: 33.33}, {FundID: "c", Percent: 33.34}},
		},
		{
			name: "float dust within tolerance is valid",
			dist: Distribution{{FundID: "a", Percent: 33.333}, {FundID: "b", Percent: 33.333}, {FundID: "c", Percent: 33.334}},
		},
		{
			name:    "sum short of 100 is invalid",
			dist:    Distribution{{FundID: "a", Percent: 60}, {FundID: "b", Percent: 39.99}},
			wantErr: ErrBadDistributionSum,
		},
		{
			name:    "empty distribution is invalid",
			dist:    Distribution{},
			wantErr: ErrBadDistributionSum,
		},
		{
			name:    "negative share is invalid",
			dist:    Distribution{{FundID: "a", Percent: -10}, {FundID: "b", Percent: 110}},
			wantErr: ErrShareOutOfRange,
		},
		{
			name:    "share above 100 is invalid",
			dist:    Distribution{{FundID: "a", Percent: 100.5}},
			wantErr: ErrShareOutOfRange,
		},
		{
			name:    "same fund twice is invalid",
			dist:    Distribution{{FundID: "a", Percent: 50}, {FundID: "a", Percent: 50}},
			wantErr: ErrDuplicateShare,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.dist.Check()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Check() = %v, want no error", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Check() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestDistribution_Allocate(t *testing.T) {
	testCases := []struct {
		name   string
		dist   Distribution
		profit float64
		want   map[string]string
	}{
		{
			name:   "even split",
			dist:   Distribution{{FundID: "a", Percent: 50}, {FundID: "b", Percent: 50}},
			profit: 600,
			want:   map[string]string{"a": "300.00", "b": "300.00"},
		},
		{
			name:   "last share absorbs the rounding remainder",
			dist:   Distribution{{FundID: "a", Percent: 33}, {FundID: "b", Percent: 33}, {FundID: "c", Percent: 34}},
			profit: 66.67,
			want:   map[string]string{"a": "22.00", "b": "22.00", "c": "22.67"}, // 22.6678 would be c's exact cut
		},
		{
			name:   "single share takes everything",
			dist:   Distribution{{FundID: "a", Percent: 100}},
			profit: 123.45,
			want:   map[string]string{"a": "123.45"},
		},
		{
			name:   "thirds conserve the cent",
			dist:   Distribution{{FundID: "a", Percent: 33.33}, {FundID: "b", Percent: 33.33}, {FundID: "c", Percent: 33.34}},
			profit: 100,
			want:   map[string]string{"a": "33.33", "b": "33.33", "c": "33.34"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.dist.Allocate(NO(tc.profit))
			if err != nil {
				t.Fatalf("Allocate(%v) returned error: %v", tc.profit, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("Allocate(%v) returned %d allocations, want %d", tc.profit, len(got), len(tc.want))
			}
			total := NO(0)
			for id, want := range tc.want {
				if got[id].String() != want {
					t.Errorf("Allocate(%v)[%q] = %s, want %s", tc.profit, id, got[id], want)
				}
				total = total.Add(got[id])
			}
			if !total.Equal(NO(tc.profit)) {
				t.Errorf("Allocate(%v) allocations sum to %s, want the exact profit", tc.profit, total)
			}
		})
	}
}

func TestDistribution_Allocate_ChecksFirst(t *testing.T) {
	dist := Distribution{{FundID: "a", Percent: 60}, {FundID: "b", Percent: 39.99}}
	if _, err := dist.Allocate(NO(100)); !errors.Is(err, ErrBadDistributionSum) {
		t.Errorf("Allocate on a bad distribution = %v, want %v", err, ErrBadDistributionSum)
	}
}

// Conservation must hold for any profit and any percentages, including the
// awkward ones that round every share the same way.
func TestDistribution_Allocate_Conservation(t *testing.T) {
	dists := []Distribution{
		{{FundID: "a", Percent: 33.33}, {FundID: "b", Percent: 33.33}, {FundID: "c", Percent: 33.34}},
		{{FundID: "a", Percent: 0.01}, {FundID: "b", Percent: 99.99}},
		{{FundID: "a", Percent: 12.5}, {FundID: "b", Percent: 12.5}, {FundID: "c", Percent: 25}, {FundID: "d", Percent: 50}},
		{{FundID: "a", Percent: 66.66}, {FundID: "b", Percent: 33.34}},
	}
	profits := []float64{0.01, 0.03, 1, 66.67, 100, 999.99, 12345.67}

	for _, dist := range dists {
		for _, profit := range profits {
			got, err := dist.Allocate(NO(profit))
			if err != nil {
				t.Fatalf("Allocate(%v) over %v returned error: %v", profit, dist, err)
			}
			total := NO(0)
			for _, alloc := range got {
				total = total.Add(alloc)
			}
			if !total.Equal(NO(profit)) {
				t.Errorf("Allocate(%v) over %v: allocations sum to %s, want %v", profit, dist, total, profit)
			}
		}
	}
}
