package database

import (
	"errors"
	"testing"
)

func TestRebindDollar(t *testing.T) {
	got := RebindDollar(`SELECT id FROM master_dist WHERE master_state_id = ? AND dist_name <> '?' AND id > ?`)
	want := `SELECT id FROM master_dist WHERE master_state_id = $1 AND dist_name <> '?' AND id > $2`
	if got != want {
		t.Fatalf("unexpected rebind:\n got: %s\nwant: %s", got, want)
	}

	plain := `SELECT id, state_name FROM master_state ORDER BY state_name`
	if RebindDollar(plain) != plain {
		t.Fatalf("query without placeholders must be unchanged")
	}
}

func TestQueryFailure_KeepsCauseAndKind(t *testing.T) {
	cause := errors.New("Unknown column 'x'")
	err := QueryFailure("list states", cause)

	if !errors.Is(err, ErrQueryFailure) {
		t.Fatalf("expected ErrQueryFailure, got %v", err)
	}
	if errors.Is(err, ErrConnectionFailure) {
		t.Fatalf("query failure must not match connection failure")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be unwrappable")
	}
	if Detail(err) != cause.Error() {
		t.Fatalf("unexpected detail: %q", Detail(err))
	}
}

func TestQueryFailure_PreservesConnectionFailure(t *testing.T) {
	connErr := ConnectionFailure("acquire", errors.New("dial tcp: connection refused"))
	err := QueryFailure("list states", connErr)

	if !errors.Is(err, ErrConnectionFailure) {
		t.Fatalf("expected connection failure to survive, got %v", err)
	}
	if errors.Is(err, ErrQueryFailure) {
		t.Fatalf("connection failure must not be reclassified")
	}
}

func TestFailureHelpers_NilCause(t *testing.T) {
	if QueryFailure("op", nil) != nil {
		t.Fatalf("expected nil")
	}
	if ConnectionFailure("op", nil) != nil {
		t.Fatalf("expected nil")
	}
}
