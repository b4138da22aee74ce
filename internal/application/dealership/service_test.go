package dealership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dubhub/internal/domain/catalog"
	dlr "dubhub/internal/domain/dealership"
	"dubhub/internal/infrastructure/storage"
	"dubhub/internal/shared/id"
	"dubhub/internal/shared/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(storage.NewMemoryDriver(), logger.NewLogger())
	require.NoError(t, err)
	return svc
}

func TestSaveKeepsZeroOrderPrice(t *testing.T) {
	svc := newTestService(t)

	d := svc.All()[0]
	product, ok := catalog.ByCode("15391")
	require.True(t, ok)
	require.NotZero(t, product.DefaultPrice)

	// A comped line is priced at zero on purpose. Save must store it as-is
	// rather than restoring the catalog default.
	d.DMTOrders = append(d.DMTOrders, dlr.DMTOrderItem{
		ID:        id.NewChildID(),
		ProductID: product.ID,
		Price:     0,
		IsActive:  true,
	})

	saved, err := svc.Save(d)
	require.NoError(t, err)

	last := saved.DMTOrders[len(saved.DMTOrders)-1]
	assert.Zero(t, last.Price)

	got, err := svc.Get(d.ID)
	require.NoError(t, err)
	assert.Zero(t, got.DMTOrders[len(got.DMTOrders)-1].Price)
}

func TestSaveKeepsExplicitOrderPrice(t *testing.T) {
	svc := newTestService(t)

	d := svc.All()[0]
	product, ok := catalog.ByCode("15392")
	require.True(t, ok)

	d.DMTOrders = append(d.DMTOrders, dlr.DMTOrderItem{
		ID:        id.NewChildID(),
		ProductID: product.ID,
		Price:     500,
		IsActive:  true,
	})

	saved, err := svc.Save(d)
	require.NoError(t, err)

	last := saved.DMTOrders[len(saved.DMTOrders)-1]
	assert.InDelta(t, 500, last.Price, 0.001)
}

func TestSaveRejectsBlankAccountName(t *testing.T) {
	svc := newTestService(t)

	d := svc.All()[0]
	d.AccountName = "   "

	_, err := svc.Save(d)
	assert.Error(t, err)
}

func TestClientNamesFeedTicketDropdown(t *testing.T) {
	svc := newTestService(t)

	names := svc.ClientNames()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}
