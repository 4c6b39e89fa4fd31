package room

import (
	"testing"
)

func TestNewBagIsPermutation(t *testing.T) {
	for i := 0; i < 200; i++ {
		bag := NewBag()
		if len(bag) != PieceCount {
			t.Fatalf("expected %d pieces, got %d", PieceCount, len(bag))
		}
		seen := make(map[int]bool)
		for _, p := range bag {
			if p < 0 || p >= PieceCount {
				t.Fatalf("piece %d out of range", p)
			}
			if seen[p] {
				t.Fatalf("duplicate piece %d in bag %v", p, bag)
			}
			seen[p] = true
		}
	}
}

func TestNewBagsIndependent(t *testing.T) {
	//200次全部相同的概率可以忽略 说明两个bag独立生成
	same := 0
	for i := 0; i < 200; i++ {
		a := NewBag()
		b := NewBag()
		equal := true
		for j := range a {
			if a[j] != b[j] {
				equal = false
				break
			}
		}
		if equal {
			same++
		}
	}
	if same == 200 {
		t.Fatal("bags are always identical, shuffle is broken")
	}
}
