package memory_test

import (
	"context"
	"testing"

	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/dataset"
	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/store/memory"
	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/types"
)

func TestAccessLogStore_ListEntries_CreationOrder(t *testing.T) {
	ds := dataset.Nov10()
	s := memory.NewAccessLogStore(ds.Logs)

	got, err := s.ListEntries(context.Background())
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(got) != len(ds.Logs) {
		t.Fatalf("expected %d entries, got %d", len(ds.Logs), len(got))
	}
	if got[0].ID != 1 || got[len(got)-1].ID != 7 {
		t.Errorf("expected ids 1..7, got first=%d last=%d", got[0].ID, got[len(got)-1].ID)
	}
}

func TestAccessLogStore_CallerMutationDoesNotLeak(t *testing.T) {
	s := memory.NewAccessLogStore(dataset.Nov10().Logs)
	ctx := context.Background()

	first, _ := s.ListEntries(ctx)
	first[0].AccessType = types.AccessError
	first[0] = types.LogEntry{}

	second, _ := s.ListEntries(ctx)
	if second[0].ID != 1 || second[0].AccessType != types.AccessAuthorized {
		t.Errorf("store was mutated through a returned slice: %+v", second[0])
	}
}

func TestAccessLogStore_ConstructorCopiesInput(t *testing.T) {
	logs := dataset.Nov10().Logs
	s := memory.NewAccessLogStore(logs)

	logs[0].ID = 99

	got, _ := s.ListEntries(context.Background())
	if got[0].ID != 1 {
		t.Errorf("expected id=1, got %d", got[0].ID)
	}
}

func TestDeviceStore_Status(t *testing.T) {
	ds := dataset.Nov10()
	s := memory.NewDeviceStore(ds.Status)

	st, err := s.Status(context.Background())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st != ds.Status {
		t.Errorf("expected %+v, got %+v", ds.Status, st)
	}
}
