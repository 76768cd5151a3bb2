package storage

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"go.uber.org/zap"

	"tariff-compare/core/types"
	"tariff-compare/internal/errors"
	"tariff-compare/internal/logging"
)

// VendorsKey is the fixed key the custom vendor list is stored under.
const VendorsKey = "customVendors"

// VendorStore saves and loads the user's custom vendors as one JSON array.
//
// Persistence is fail-open: backend and decode failures are logged at warn
// and reported through types.StoreStatus. Callers always get a usable
// (possibly empty) list back.
type VendorStore struct {
	kv     KV
	logger *zap.Logger
}

// NewVendorStore creates a vendor store over kv
func NewVendorStore(kv KV, logger *zap.Logger) *VendorStore {
	return &VendorStore{kv: kv, logger: logging.OrNop(logger)}
}

// Save replaces the stored list with plans. A nil slice is stored as [].
func (s *VendorStore) Save(ctx context.Context, plans []types.VendorPlan) types.StoreStatus {
	if plans == nil {
		plans = []types.VendorPlan{}
	}

	data, err := json.Marshal(plans)
	if err != nil {
		return s.fail("encode custom vendors", types.StoreFailed, err)
	}
	if err := s.kv.Set(ctx, VendorsKey, string(data)); err != nil {
		return s.fail("save custom vendors", types.StoreFailed, err)
	}

	s.logger.Debug("custom vendors saved", zap.Int("count", len(plans)))
	return types.StoreStatus{Outcome: types.StoreOK}
}

// Load returns the stored list. The slice is never nil.
func (s *VendorStore) Load(ctx context.Context) ([]types.VendorPlan, types.StoreStatus) {
	raw, ok, err := s.kv.Get(ctx, VendorsKey)
	if stderrors.Is(err, ErrCorrupt) {
		return []types.VendorPlan{}, s.fail("decode store file", types.StoreCorrupt, err)
	}
	if err != nil {
		return []types.VendorPlan{}, s.fail("load custom vendors", types.StoreFailed, err)
	}
	if !ok {
		return []types.VendorPlan{}, types.StoreStatus{Outcome: types.StoreEmpty}
	}

	var plans []types.VendorPlan
	if err := json.Unmarshal([]byte(raw), &plans); err != nil {
		return []types.VendorPlan{}, s.fail("decode custom vendors", types.StoreCorrupt, err)
	}
	if plans == nil {
		plans = []types.VendorPlan{}
	}
	return plans, types.StoreStatus{Outcome: types.StoreOK}
}

func (s *VendorStore) fail(msg string, outcome types.StoreOutcome, cause error) types.StoreStatus {
	err := errors.Storage(msg, cause).WithContext("key", VendorsKey)
	s.logger.Warn(msg,
		zap.String("key", VendorsKey),
		zap.String("outcome", outcome.String()),
		zap.Error(cause),
	)
	return types.StoreStatus{Outcome: outcome, Err: err}
}
