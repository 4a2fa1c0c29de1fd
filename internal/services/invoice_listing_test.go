package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hypernova-labs/invoice-actions/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLister struct {
	items []models.InvoiceListItem
	err   error
	calls int
}

func (l *countingLister) List(_ context.Context, limit int) ([]models.InvoiceListItem, error) {
	l.calls++
	return l.items, l.err
}

func TestInvoiceListing_ServesFromCacheUntilRevalidated(t *testing.T) {
	_, rdb := newTestRedis(t)
	cache := NewViewCache(rdb, nil, time.Minute, quietLogger())
	lister := &countingLister{items: []models.InvoiceListItem{{Invoice: models.Invoice{ID: "inv-1"}}}}
	listing := NewInvoiceListing(lister, cache, listingPath, quietLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		invoices, err := listing.Invoices(ctx)
		require.NoError(t, err)
		assert.Len(t, invoices, 1)
	}
	assert.Equal(t, 1, lister.calls)

	// una mutación invalida la vista y la siguiente lectura va a la base de datos
	store := newMemoryStore()
	actions := newActions(store, cache, false)
	result := actions.CreateInvoice(ctx, invoiceForm("c1", "3", "pending"))
	require.True(t, result.IsRedirect())

	_, err := listing.Invoices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, lister.calls)
}

func TestInvoiceListing_PropagatesQueryError(t *testing.T) {
	lister := &countingLister{err: errors.New("relation \"invoices\" does not exist")}
	listing := NewInvoiceListing(lister, NewViewCache(nil, nil, time.Minute, quietLogger()), listingPath, quietLogger())

	_, err := listing.Invoices(context.Background())
	assert.Error(t, err)
}
