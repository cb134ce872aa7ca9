package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/mock"
	"github.com/MKhiriev/go-provenance-keeper/internal/store"
	"github.com/MKhiriev/go-provenance-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memCatalog is a map-backed catalog so repeated passes see their own
// writes.
type memCatalog struct {
	mu   sync.Mutex
	rows map[string]models.Product
}

func (c *memCatalog) exists(_ context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.rows[id]
	return ok, nil
}

func (c *memCatalog) insert(_ context.Context, p models.Product) (models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.rows[p.ProductID]; ok {
		return models.Product{}, store.ErrDuplicateProductID
	}
	c.rows[p.ProductID] = p
	return p, nil
}

func TestReconciliationService_BackfillsAndIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	ledger := mock.NewMockLedgerAdapter(ctrl)
	products := mock.NewMockProductRepository(ctrl)
	inconsistencies := mock.NewMockInconsistencyRepository(ctrl)

	catalog := &memCatalog{rows: map[string]models.Product{
		"SKU-1": {ProductID: "SKU-1", Source: models.SourceRegistration},
	}}
	registrations := []models.LedgerRegistration{
		{ProductID: "SKU-1", Name: "Widget", Manufacturer: "Acme", TxRef: "0x01"},
		{ProductID: "SKU-2", Name: "Gadget", Manufacturer: "Acme", TxRef: "0x02"},
	}

	ledger.EXPECT().Registrations(ctx).Return(registrations, nil).Times(2)
	products.EXPECT().Exists(ctx, gomock.Any()).DoAndReturn(catalog.exists).AnyTimes()
	products.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, p models.Product) (models.Product, error) {
			assert.Nil(t, p.RegistrantID)
			assert.Equal(t, models.SourceReconciliation, p.Source)
			return catalog.insert(ctx, p)
		},
	).Times(1)

	resolvedOnce := map[string]bool{}
	inconsistencies.EXPECT().ResolveInconsistencies(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, _ time.Time) (int64, error) {
			if id == "SKU-2" && !resolvedOnce[id] {
				resolvedOnce[id] = true
				return 1, nil
			}
			return 0, nil
		},
	).AnyTimes()

	svc := NewReconciliationService(ledger, products, inconsistencies, logger.Nop())

	first, err := svc.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ReconcileReport{Scanned: 2, Backfilled: []string{"SKU-2"}, Resolved: 1}, first)

	second, err := svc.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ReconcileReport{Scanned: 2, Backfilled: []string{}, Resolved: 0}, second)

	assert.Equal(t, "0x02", catalog.rows["SKU-2"].TxRef)
}

func TestReconciliationService_LostInsertRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	ledger := mock.NewMockLedgerAdapter(ctrl)
	products := mock.NewMockProductRepository(ctrl)
	inconsistencies := mock.NewMockInconsistencyRepository(ctrl)

	ledger.EXPECT().Registrations(ctx).Return([]models.LedgerRegistration{{ProductID: "SKU-3", TxRef: "0x03"}}, nil)
	products.EXPECT().Exists(ctx, "SKU-3").Return(false, nil)
	products.EXPECT().Insert(ctx, gomock.Any()).Return(models.Product{}, store.ErrDuplicateProductID)
	inconsistencies.EXPECT().ResolveInconsistencies(ctx, "SKU-3", gomock.Any()).Return(int64(1), nil)

	report, err := NewReconciliationService(ledger, products, inconsistencies, logger.Nop()).Reconcile(ctx)
	require.NoError(t, err)
	assert.Empty(t, report.Backfilled)
	assert.Equal(t, 1, report.Resolved)
}

func TestReconciliationService_Errors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	t.Run("ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := mock.NewMockLedgerAdapter(ctrl)
		ledger.EXPECT().Registrations(ctx).Return(nil, boom)

		_, err := NewReconciliationService(ledger, mock.NewMockProductRepository(ctrl), mock.NewMockInconsistencyRepository(ctrl), logger.Nop()).Reconcile(ctx)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := mock.NewMockLedgerAdapter(ctrl)
		products := mock.NewMockProductRepository(ctrl)
		ledger.EXPECT().Registrations(ctx).Return([]models.LedgerRegistration{{ProductID: "SKU-1"}}, nil)
		products.EXPECT().Exists(ctx, "SKU-1").Return(false, boom)

		report, err := NewReconciliationService(ledger, products, mock.NewMockInconsistencyRepository(ctrl), logger.Nop()).Reconcile(ctx)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, report.Scanned)
	})
}
