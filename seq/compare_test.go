package seq

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b []int
		want bool
	}{
		{"both empty", nil, nil, true},
		{"same values", []int{1, 2, 3}, []int{1, 2, 3}, true},
		{"last differs", []int{1, 2, 3}, []int{1, 2, 4}, false},
		{"prefix", []int{1, 2, 3}, []int{1, 2}, false},
		{"prefix reversed", []int{1, 2}, []int{1, 2, 3}, false},
		{"empty vs nonempty", nil, []int{1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Equal(context.Background(), FromSlice(tc.a), FromSlice(tc.b))
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestEqual_ShortCircuit(t *testing.T) {
	ca := &countingIter[int]{source: &sliceIter[int]{items: []int{1, 9, 3, 4}}}
	cb := &countingIter[int]{source: &sliceIter[int]{items: []int{1, 2, 3, 4}}}
	got, err := Equal(context.Background(), From[int](ca), From[int](cb))
	if err != nil {
		t.Fatal(err)
	}
	if got {
		t.Fatal("sequences differ at the second position")
	}
	if ca.nexts != 2 || cb.nexts != 2 {
		t.Errorf("pulled a=%d b=%d times, want 2 each: nothing past the first difference", ca.nexts, cb.nexts)
	}
}

func TestEqual_Error(t *testing.T) {
	boom := errors.New("source failed")
	a := From[int](&failAfterIter[int]{items: []int{1}, err: boom})
	b := FromSlice([]int{1, 2})
	_, err := Equal(context.Background(), a, b)
	if !errors.Is(err, boom) {
		t.Errorf("expected source error, got %v", err)
	}
}

func TestEqualFunc(t *testing.T) {
	a := FromSlice([]string{"Alpha", "Beta"})
	b := FromSlice([]string{"alpha", "BETA"})
	got, err := EqualFunc(context.Background(), a, b, strings.EqualFold)
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Error("case-insensitive comparison should match")
	}
}

func TestEmpty(t *testing.T) {
	empty, err := Empty(context.Background(), FromSlice([]int{}))
	if err != nil {
		t.Fatal(err)
	}
	if !empty {
		t.Error("empty sequence should report true")
	}

	empty, err = Empty(context.Background(), FromSlice([]int{1}))
	if err != nil {
		t.Fatal(err)
	}
	if empty {
		t.Error("non-empty sequence should report false")
	}
}

func TestEmpty_ConsumesOneValue(t *testing.T) {
	// The probe is destructive: against a shared live iterator, the value
	// it pulled is gone.
	iter := &sliceIter[int]{items: []int{1, 2, 3}}
	empty, err := Empty(context.Background(), From[int](iter))
	if err != nil {
		t.Fatal(err)
	}
	if empty {
		t.Fatal("sequence has values")
	}
	rest, err := Collect(context.Background(), From[int](iter))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(rest, []int{2, 3}) {
		t.Errorf("expected the probe to have consumed the first value, got %v", rest)
	}
}

func TestEmpty_Error(t *testing.T) {
	boom := errors.New("source failed")
	_, err := Empty(context.Background(), From[int](&failAfterIter[int]{err: boom}))
	if !errors.Is(err, boom) {
		t.Errorf("expected source error, got %v", err)
	}
}
