package record

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"sgf_keeper/internal/domain/record"
	"sgf_keeper/internal/domain/sgf"
	sgferrors "sgf_keeper/internal/errors"
)

type RecordStore interface {
	NewRecordID() string
	PutRecord(ctx context.Context, rec record.Record) error
	GetRecord(ctx context.Context, id string) (record.Record, error)
	ListRecords(ctx context.Context, player string, page, limit int) ([]record.Record, int64, error)
	DeleteRecord(ctx context.Context, id string) error

	CacheSGF(ctx context.Context, id string, text string) error
	LoadCachedSGF(ctx context.Context, id string) (string, error)
	DropCachedSGF(ctx context.Context, id string) error
}

type RecordUseCase struct {
	store     RecordStore
	log       *zap.SugaredLogger
	pageLimit int
	now       func() time.Time
}

func NewRecordUseCase(store RecordStore, log *zap.SugaredLogger, pageLimit int) *RecordUseCase {
	if pageLimit <= 0 {
		pageLimit = 20
	}
	return &RecordUseCase{store: store, log: log, pageLimit: pageLimit, now: time.Now}
}

// Canonicalize parses text and returns its canonical form.
func (u *RecordUseCase) Canonicalize(text string, strict bool) (string, *sgf.Collection, error) {
	collection, err := sgf.Parse(text, sgf.Strict(strict))
	if err != nil {
		return "", nil, err
	}
	return sgf.Write(collection), collection, nil
}

func (u *RecordUseCase) Import(ctx context.Context, text string, strict bool) (record.Record, error) {
	canonical, collection, err := u.Canonicalize(text, strict)
	if err != nil {
		return record.Record{}, err
	}
	if len(collection.Trees) == 0 {
		return record.Record{}, sgferrors.ErrEmptyCollection
	}

	rec := record.Summarize(collection)
	rec.ID = u.store.NewRecordID()
	rec.SGF = canonical
	rec.CreatedAt = u.now().UTC()

	if err = u.store.PutRecord(ctx, rec); err != nil {
		return record.Record{}, err
	}
	if err = u.store.CacheSGF(ctx, rec.ID, canonical); err != nil {
		u.log.Errorf("failed to cache sgf of record %s: %v", rec.ID, err)
	}
	return rec, nil
}

func (u *RecordUseCase) GetRecord(ctx context.Context, id string) (record.Record, error) {
	return u.store.GetRecord(ctx, id)
}

// GetSGF serves the canonical text from the cache and refills it on a miss.
func (u *RecordUseCase) GetSGF(ctx context.Context, id string) (string, error) {
	text, err := u.store.LoadCachedSGF(ctx, id)
	if err == nil {
		return text, nil
	}
	if !errors.Is(err, sgferrors.ErrRecordNotFound) {
		u.log.Errorf("sgf cache read for %s failed: %v", id, err)
	}

	rec, err := u.store.GetRecord(ctx, id)
	if err != nil {
		return "", err
	}
	if err = u.store.CacheSGF(ctx, id, rec.SGF); err != nil {
		u.log.Errorf("failed to cache sgf of record %s: %v", id, err)
	}
	return rec.SGF, nil
}

// GetTrees parses the stored text of a record back into views.
func (u *RecordUseCase) GetTrees(ctx context.Context, id string) ([]record.TreeView, error) {
	text, err := u.GetSGF(ctx, id)
	if err != nil {
		return nil, err
	}
	collection, err := sgf.Parse(text, sgf.Lax())
	if err != nil {
		return nil, err
	}
	return record.ViewCollection(collection), nil
}

func (u *RecordUseCase) ListRecords(ctx context.Context, player string, page int) (*record.ListResponse, error) {
	if page < 1 {
		page = 1
	}
	records, total, err := u.store.ListRecords(ctx, player, page, u.pageLimit)
	if err != nil {
		return nil, err
	}
	return &record.ListResponse{Records: records, Total: total, Page: page}, nil
}

func (u *RecordUseCase) DeleteRecord(ctx context.Context, id string) error {
	if err := u.store.DeleteRecord(ctx, id); err != nil {
		return err
	}
	if err := u.store.DropCachedSGF(ctx, id); err != nil {
		u.log.Errorf("failed to drop cached sgf of record %s: %v", id, err)
	}
	return nil
}
