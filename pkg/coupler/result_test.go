package coupler

import (
	"errors"
	"testing"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	res := Success(42)

	if !res.IsSuccess() {
		t.Fatalf("expected success, got error: %v", res.Err())
	}
	if res.IsFailure() {
		t.Fatalf("success must not report failure")
	}
	if res.Result() != 42 {
		t.Fatalf("expected 42, got %d", res.Result())
	}
	if res.Err() != nil {
		t.Fatalf("expected nil error, got %v", res.Err())
	}
	if res.CreatedAt().IsZero() {
		t.Fatalf("expected creation time to be set")
	}
}

func TestFail(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	res := Fail[int](boom)

	if res.IsSuccess() {
		t.Fatalf("expected failure, got success: %v", res.Result())
	}
	if !res.IsFailure() {
		t.Fatalf("expected IsFailure to report true")
	}
	if !errors.Is(res.Err(), boom) {
		t.Fatalf("expected error %v, got %v", boom, res.Err())
	}
	if res.Result() != 0 {
		t.Fatalf("expected zero value, got %d", res.Result())
	}
}

func TestFailFrom(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	from := Fail[string](boom)
	to := FailFrom[string, int](from)

	if !to.IsFailure() {
		t.Fatalf("expected carried failure")
	}
	if !errors.Is(to.Err(), boom) {
		t.Fatalf("expected error %v, got %v", boom, to.Err())
	}
	if to.Id() != from.Id() {
		t.Fatalf("expected identity to be preserved across the type boundary")
	}
	if !to.CreatedAt().Equal(from.CreatedAt()) {
		t.Fatalf("expected creation time to be preserved")
	}
}

func TestZeroResultIsEmpty(t *testing.T) {
	t.Parallel()

	var res Result[int]

	if !res.IsEmpty() {
		t.Fatalf("zero value must be empty")
	}
	if res.IsSuccess() || res.IsFailure() {
		t.Fatalf("zero value is neither success nor failure")
	}
}

func TestResultIdentityIsUnique(t *testing.T) {
	t.Parallel()

	a := Success(1)
	b := Success(1)

	if a.Id() == b.Id() {
		t.Fatalf("distinct results must carry distinct ids")
	}
}
