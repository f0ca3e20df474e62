package model

import (
	"math/rand"
	"testing"
)

func TestIdentity(t *testing.T) {
	p := Identity(4)
	for i, v := range p {
		if v != i {
			t.Fatalf("Identity(4)[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		perm    Permutation
		wantErr bool
	}{
		{"identity", Permutation{0, 1, 2}, false},
		{"reversed", Permutation{2, 1, 0}, false},
		{"duplicate", Permutation{0, 1, 1}, true},
		{"out of range", Permutation{0, 1, 3}, true},
		{"negative", Permutation{0, -1, 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.perm.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%v) error = %v, wantErr %v", tt.perm, err, tt.wantErr)
			}
		})
	}
}

func TestInverse(t *testing.T) {
	p := Permutation{2, 0, 3, 1}
	inv := p.Inverse()
	for i := range p {
		if inv[p[i]] != i {
			t.Fatalf("Inverse broken at %d: perm %v, inverse %v", i, p, inv)
		}
	}

	// Inverting twice restores the original.
	if !p.Inverse().Inverse().Equal(p) {
		t.Errorf("double inverse of %v = %v", p, p.Inverse().Inverse())
	}
}

func TestNext_EnumeratesAllPermutationsInOrder(t *testing.T) {
	p := Permutation{0, 1, 2, 3}
	seen := map[string]bool{}
	count := 0
	prev := ""
	for {
		key := p.String()
		if seen[key] {
			t.Fatalf("permutation %s enumerated twice", key)
		}
		if key <= prev && prev != "" {
			t.Fatalf("enumeration not in lexicographic order: %s after %s", key, prev)
		}
		seen[key] = true
		prev = key
		count++
		if !p.Next() {
			break
		}
	}
	if count != 24 {
		t.Fatalf("enumerated %d permutations of 4, want 24", count)
	}
	// The enumeration ends at the reverse of identity.
	if !p.Equal(Permutation{3, 2, 1, 0}) {
		t.Errorf("final permutation = %v, want [3 2 1 0]", p)
	}
}

func TestShuffled_IsValidAndDeterministic(t *testing.T) {
	a := Shuffled(6, rand.New(rand.NewSource(9)))
	b := Shuffled(6, rand.New(rand.NewSource(9)))
	if err := a.Validate(); err != nil {
		t.Fatalf("Shuffled produced invalid permutation: %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("same seed produced different shuffles: %v vs %v", a, b)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	p := Permutation{1, 0, 2}
	c := p.Clone()
	c[0] = 2
	if p[0] != 1 {
		t.Errorf("Clone shares backing array with original")
	}
}
