package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"sgf_keeper/internal/domain/record"
	sgferrors "sgf_keeper/internal/errors"
)

func TestMapStorageListPagesNewestFirst(t *testing.T) {
	ctx := context.Background()
	m := NewMapRecordStorage()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, black := range []string{"a", "b", "a", "c"} {
		rec := record.Record{
			ID:          m.NewRecordID(),
			PlayerBlack: black,
			SGF:         "(\n  ;FF[4]\n)",
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}
		if err := m.PutRecord(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	page, total, err := m.ListRecords(ctx, "", 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if total != 4 || len(page) != 3 {
		t.Fatalf("total=%d len=%d", total, len(page))
	}
	if page[0].PlayerBlack != "c" || page[0].SGF != "" {
		t.Errorf("first = %+v", page[0])
	}

	page, _, _ = m.ListRecords(ctx, "", 2, 3)
	if len(page) != 1 {
		t.Errorf("second page len = %d", len(page))
	}
	page, _, _ = m.ListRecords(ctx, "", 5, 3)
	if len(page) != 0 {
		t.Errorf("out of range page len = %d", len(page))
	}

	page, total, _ = m.ListRecords(ctx, "a", 1, 10)
	if total != 2 || len(page) != 2 {
		t.Errorf("player filter total=%d len=%d", total, len(page))
	}
}

func TestMapStorageNotFound(t *testing.T) {
	ctx := context.Background()
	m := NewMapRecordStorage()
	if _, err := m.GetRecord(ctx, "x"); !errors.Is(err, sgferrors.ErrRecordNotFound) {
		t.Errorf("GetRecord err = %v", err)
	}
	if err := m.DeleteRecord(ctx, "x"); !errors.Is(err, sgferrors.ErrRecordNotFound) {
		t.Errorf("DeleteRecord err = %v", err)
	}
	if _, err := m.LoadCachedSGF(ctx, "x"); !errors.Is(err, sgferrors.ErrRecordNotFound) {
		t.Errorf("LoadCachedSGF err = %v", err)
	}
}
