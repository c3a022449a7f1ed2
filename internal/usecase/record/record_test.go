package record

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	repo "sgf_keeper/internal/repository"
	sgferrors "sgf_keeper/internal/errors"
)

func newUseCase() (*RecordUseCase, *repo.RecordMapStorage) {
	store := repo.NewMapRecordStorage()
	return NewRecordUseCase(store, zap.NewNop().Sugar(), 2), store
}

func TestCanonicalize(t *testing.T) {
	uc, _ := newUseCase()
	out, collection, err := uc.Canonicalize("(;FF[4];PB[qq])", true)
	if err != nil {
		t.Fatal(err)
	}
	if out != "(\n  ;FF[4]\n  ;PB[qq]\n)" || len(collection.Trees) != 1 {
		t.Errorf("got %q", out)
	}

	if _, _, err = uc.Canonicalize("  ;FF[4])", true); !errors.Is(err, sgferrors.ErrMalformedInput) {
		t.Errorf("strict err = %v", err)
	}
	if _, _, err = uc.Canonicalize("  ;FF[4])", false); err != nil {
		t.Errorf("lax err = %v", err)
	}
}

func TestImportStoresAndCaches(t *testing.T) {
	ctx := context.Background()
	uc, store := newUseCase()

	rec, err := uc.Import(ctx, "(;PB[black]PW[white];B[aa])", true)
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID == "" || rec.Name != "black vs white" || rec.NodeCount != 2 {
		t.Errorf("record = %+v", rec)
	}

	cached, err := store.LoadCachedSGF(ctx, rec.ID)
	if err != nil || cached != rec.SGF {
		t.Errorf("cached = %q, %v", cached, err)
	}
	stored, err := uc.GetRecord(ctx, rec.ID)
	if err != nil || stored.SGF != rec.SGF {
		t.Errorf("stored = %+v, %v", stored, err)
	}
}

func TestImportRejectsEmptyCollection(t *testing.T) {
	uc, _ := newUseCase()
	if _, err := uc.Import(context.Background(), "nothing here", false); !errors.Is(err, sgferrors.ErrEmptyCollection) {
		t.Errorf("err = %v", err)
	}
}

func TestGetSGFRefillsCache(t *testing.T) {
	ctx := context.Background()
	uc, store := newUseCase()
	rec, err := uc.Import(ctx, "(;FF[4])", true)
	if err != nil {
		t.Fatal(err)
	}
	_ = store.DropCachedSGF(ctx, rec.ID)

	text, err := uc.GetSGF(ctx, rec.ID)
	if err != nil || text != "(\n  ;FF[4]\n)" {
		t.Fatalf("GetSGF = %q, %v", text, err)
	}
	if cached, err := store.LoadCachedSGF(ctx, rec.ID); err != nil || cached != text {
		t.Errorf("cache not refilled: %q, %v", cached, err)
	}

	if _, err = uc.GetSGF(ctx, "missing"); !errors.Is(err, sgferrors.ErrRecordNotFound) {
		t.Errorf("missing err = %v", err)
	}
}

func TestGetTrees(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()
	rec, err := uc.Import(ctx, "(;FF[4](;B[aa])(;B[bb]))(;FF[3])", true)
	if err != nil {
		t.Fatal(err)
	}
	trees, err := uc.GetTrees(ctx, rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(trees) != 2 || len(trees[0].Root.Children) != 2 {
		t.Errorf("trees = %+v", trees)
	}
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	uc, store := newUseCase()
	var ids []string
	for _, text := range []string{"(;PB[a])", "(;PB[b])", "(;PW[a])"} {
		rec, err := uc.Import(ctx, text, true)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, rec.ID)
	}

	list, err := uc.ListRecords(ctx, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if list.Page != 1 || list.Total != 3 || len(list.Records) != 2 {
		t.Errorf("list = %+v", list)
	}
	list, _ = uc.ListRecords(ctx, "a", 1)
	if list.Total != 2 {
		t.Errorf("player list total = %d", list.Total)
	}

	if err = uc.DeleteRecord(ctx, ids[0]); err != nil {
		t.Fatal(err)
	}
	if _, err = store.LoadCachedSGF(ctx, ids[0]); !errors.Is(err, sgferrors.ErrRecordNotFound) {
		t.Errorf("cache kept after delete: %v", err)
	}
	if err = uc.DeleteRecord(ctx, ids[0]); !errors.Is(err, sgferrors.ErrRecordNotFound) {
		t.Errorf("second delete err = %v", err)
	}
}
