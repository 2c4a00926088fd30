package seq

import (
	"context"
	"errors"
	"testing"
)

func TestFromSeq(t *testing.T) {
	src := func(yield func(int) bool) {
		for i := 1; i <= 3; i++ {
			if !yield(i) {
				return
			}
		}
	}
	got, err := Collect(context.Background(), FromSeq[int](src))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestFromSeq2_Error(t *testing.T) {
	boom := errors.New("push source failed")
	src := func(yield func(int, error) bool) {
		if !yield(1, nil) {
			return
		}
		yield(0, boom)
	}
	got, err := Collect(context.Background(), FromSeq2[int](src))
	if !errors.Is(err, boom) {
		t.Fatalf("expected push source error, got %v", err)
	}
	if !intSliceEqual(got, []int{1}) {
		t.Errorf("expected values before the failure, got %v", got)
	}
}

func TestAll(t *testing.T) {
	boom := errors.New("source failed")
	s := From[int](&failAfterIter[int]{items: []int{1, 2}, err: boom})

	var got []int
	var gotErr error
	for v, err := range s.All(context.Background()) {
		if err != nil {
			gotErr = err
			break
		}
		got = append(got, v)
	}
	if !intSliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
	if !errors.Is(gotErr, boom) {
		t.Errorf("expected the terminal error as the final pair, got %v", gotErr)
	}
}

func TestAll_EarlyBreakCloses(t *testing.T) {
	counting := &countingIter[int]{source: &sliceIter[int]{items: []int{1, 2, 3}}}
	for range From[int](counting).All(context.Background()) {
		break
	}
	if counting.closes != 1 {
		t.Errorf("breaking out of the range should close the iterator, closes=%d", counting.closes)
	}
}
