package layout

import "testing"

func TestApportion(t *testing.T) {
	tests := map[string]struct {
		amount  int
		weights []float64
		want    []int
	}{
		"even split": {
			amount:  12,
			weights: []float64{1, 1, 1},
			want:    []int{4, 4, 4},
		},
		"proportional": {
			amount:  100,
			weights: []float64{1, 3},
			want:    []int{25, 75},
		},
		"remainder goes to largest fraction": {
			amount:  10,
			weights: []float64{1, 1, 1},
			want:    []int{4, 3, 3},
		},
		"tie breaks to earlier index": {
			amount:  3,
			weights: []float64{1, 1},
			want:    []int{2, 1},
		},
		"negative amount": {
			amount:  -10,
			weights: []float64{1, 1, 1},
			want:    []int{-4, -3, -3},
		},
		"zero weight gets nothing": {
			amount:  6,
			weights: []float64{0, 1, 2},
			want:    []int{0, 2, 4},
		},
		"zero weight sum": {
			amount:  6,
			weights: []float64{0, 0},
			want:    []int{0, 0},
		},
		"zero amount": {
			amount:  0,
			weights: []float64{1, 2},
			want:    []int{0, 0},
		},
		"no weights": {
			amount:  5,
			weights: nil,
			want:    []int{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := apportion(tt.amount, tt.weights)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("share[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestApportion_SharesSumToAmount(t *testing.T) {
	weights := []float64{0.3, 2.1, 1.0, 0.6, 4.7}
	for amount := -50; amount <= 50; amount++ {
		sum := 0
		for _, s := range apportion(amount, weights) {
			sum += s
		}
		if sum != amount {
			t.Errorf("apportion(%d) shares sum to %d", amount, sum)
		}
	}
}

func TestApportionEqual(t *testing.T) {
	tests := map[string]struct {
		amount int
		n      int
		want   []int
	}{
		"divides evenly":  {12, 3, []int{4, 4, 4}},
		"extras go first": {11, 3, []int{4, 4, 3}},
		"more slots":      {2, 4, []int{1, 1, 0, 0}},
		"single slot":     {7, 1, []int{7}},
		"zero slots":      {7, 0, nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := apportionEqual(tt.amount, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("share[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}
