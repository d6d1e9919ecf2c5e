package allocator

import (
	"math"
	"testing"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name         string
		childIDs     []string
		feePerChild  float64
		requested    float64
		wantErr      bool
		validateFunc func(t *testing.T, allocs []ChildAllocation)
	}{
		{
			name:        "full funding for every child",
			childIDs:    []string{"c1", "c2", "c3"},
			feePerChild: 100,
			requested:   300,
			validateFunc: func(t *testing.T, allocs []ChildAllocation) {
				for _, a := range allocs {
					if a.Applied != 100 {
						t.Errorf("%s applied = %v, want 100", a.ChildID, a.Applied)
					}
					if a.Balance != 0 {
						t.Errorf("%s balance = %v, want 0", a.ChildID, a.Balance)
					}
				}
			},
		},
		{
			name:        "partial funding for the last child",
			childIDs:    []string{"c1", "c2"},
			feePerChild: 100,
			requested:   150,
			validateFunc: func(t *testing.T, allocs []ChildAllocation) {
				if allocs[0].Applied != 100 || allocs[0].Balance != 0 {
					t.Errorf("c1 = {%v, %v}, want {100, 0}", allocs[0].Applied, allocs[0].Balance)
				}
				if allocs[1].Applied != 50 || allocs[1].Balance != 50 {
					t.Errorf("c2 = {%v, %v}, want {50, 50}", allocs[1].Applied, allocs[1].Balance)
				}
			},
		},
		{
			name:        "amount below a single fee funds only the first child",
			childIDs:    []string{"c1", "c2", "c3"},
			feePerChild: 100,
			requested:   40,
			validateFunc: func(t *testing.T, allocs []ChildAllocation) {
				if allocs[0].Applied != 40 || allocs[0].Balance != 60 {
					t.Errorf("c1 = {%v, %v}, want {40, 60}", allocs[0].Applied, allocs[0].Balance)
				}
				for _, a := range allocs[1:] {
					if a.Applied != 0 {
						t.Errorf("%s applied = %v, want 0", a.ChildID, a.Applied)
					}
					if a.Balance != 100 {
						t.Errorf("%s balance = %v, want full fee 100", a.ChildID, a.Balance)
					}
				}
			},
		},
		{
			name:        "surplus beyond all fees is dropped",
			childIDs:    []string{"c1", "c2"},
			feePerChild: 100,
			requested:   250,
			validateFunc: func(t *testing.T, allocs []ChildAllocation) {
				total := 0.0
				for _, a := range allocs {
					if a.Applied != 100 || a.Balance != 0 {
						t.Errorf("%s = {%v, %v}, want {100, 0}", a.ChildID, a.Applied, a.Balance)
					}
					total += a.Applied
				}
				if total != 200 {
					t.Errorf("sum(applied) = %v, want 200 (surplus not allocated)", total)
				}
			},
		},
		{
			name:        "order decides who gets funded",
			childIDs:    []string{"late", "early"},
			feePerChild: 50,
			requested:   50,
			validateFunc: func(t *testing.T, allocs []ChildAllocation) {
				if allocs[0].ChildID != "late" || allocs[0].Applied != 50 {
					t.Errorf("first entry = %+v, want late fully funded", allocs[0])
				}
				if allocs[1].ChildID != "early" || allocs[1].Applied != 0 {
					t.Errorf("second entry = %+v, want early unfunded", allocs[1])
				}
			},
		},
		{
			name:        "single child",
			childIDs:    []string{"c1"},
			feePerChild: 75.5,
			requested:   75.5,
			validateFunc: func(t *testing.T, allocs []ChildAllocation) {
				if allocs[0].Applied != 75.5 || allocs[0].Balance != 0 {
					t.Errorf("c1 = {%v, %v}, want {75.5, 0}", allocs[0].Applied, allocs[0].Balance)
				}
			},
		},
		{
			name:        "no children should error",
			childIDs:    []string{},
			feePerChild: 100,
			requested:   100,
			wantErr:     true,
		},
		{
			name:        "zero requested amount should error",
			childIDs:    []string{"c1"},
			feePerChild: 100,
			requested:   0,
			wantErr:     true,
		},
		{
			name:        "negative requested amount should error",
			childIDs:    []string{"c1"},
			feePerChild: 100,
			requested:   -10,
			wantErr:     true,
		},
		{
			name:        "zero fee should error",
			childIDs:    []string{"c1"},
			feePerChild: 0,
			requested:   100,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocs, err := Allocate(tt.childIDs, tt.feePerChild, tt.requested)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(allocs) != len(tt.childIDs) {
				t.Fatalf("got %d allocations, want %d", len(allocs), len(tt.childIDs))
			}
			for i, a := range allocs {
				if a.ChildID != tt.childIDs[i] {
					t.Errorf("allocation %d is for %s, want %s (order must be preserved)", i, a.ChildID, tt.childIDs[i])
				}
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, allocs)
			}
		})
	}
}

// Applied amounts must be conserved: the sum equals the requested amount
// capped at the total of all fees, never more.
func TestAllocateConservation(t *testing.T) {
	cases := []struct {
		n         int
		fee       float64
		requested float64
	}{
		{1, 100, 30},
		{2, 100, 150},
		{3, 100, 300},
		{4, 100, 1000},
		{5, 33.33, 100},
		{7, 19.99, 60},
	}

	for _, c := range cases {
		ids := make([]string, c.n)
		for i := range ids {
			ids[i] = "child-" + string(rune('a'+i))
		}

		allocs, err := Allocate(ids, c.fee, c.requested)
		if err != nil {
			t.Fatalf("Allocate(n=%d, fee=%v, requested=%v): %v", c.n, c.fee, c.requested, err)
		}

		sum := 0.0
		for _, a := range allocs {
			if a.Applied < 0 {
				t.Errorf("applied %v is negative", a.Applied)
			}
			if a.Applied > c.fee {
				t.Errorf("applied %v exceeds fee %v", a.Applied, c.fee)
			}
			if a.Balance < 0 {
				t.Errorf("balance %v is negative", a.Balance)
			}
			sum += a.Applied
		}

		want := c.requested
		if total := c.fee * float64(c.n); total < want {
			want = total
		}
		if math.Abs(sum-want) > 1e-9 {
			t.Errorf("n=%d fee=%v requested=%v: sum(applied) = %v, want %v", c.n, c.fee, c.requested, sum, want)
		}
	}
}
