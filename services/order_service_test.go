package services

import (
	"customer-app/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderLinksCustomers(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerService(db)
	svc := NewOrderService(db)

	id := createTestCustomer(t, customers, "buyer@email.com")

	created, err := svc.Create(&CreateOrderInput{
		OrderNumber: "ORD-100",
		TotalAmount: 42.50,
		CustomerIDs: []uint{id},
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-100", created.OrderNumber)
	assert.Equal(t, "Pending", created.Status)

	var links []models.CustomerOrder
	require.NoError(t, db.Where("order_id = ?", created.OrderID).Find(&links).Error)
	require.Len(t, links, 1)
	assert.Equal(t, id, links[0].CustomerID)
	assert.Equal(t, "Primary", links[0].Role)
	assert.False(t, links[0].AssignedDate.IsZero())

	// The customer projection counts the new link.
	customer, err := customers.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, 1, customer.TotalOrders)
	assert.Zero(t, customer.TotalSpent)
}

func TestCreateOrderGeneratesNumberWhenAbsent(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	created, err := svc.Create(&CreateOrderInput{TotalAmount: 10})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.OrderNumber, "ORD-"))
	assert.Greater(t, len(created.OrderNumber), len("ORD-"))
}

func TestCreateOrderDuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.Create(&CreateOrderInput{OrderNumber: "ORD-DUP", TotalAmount: 10})
	require.NoError(t, err)

	_, err = svc.Create(&CreateOrderInput{OrderNumber: "ORD-DUP", TotalAmount: 20})
	assert.ErrorIs(t, err, ErrDuplicateOrderNumber)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetOrderByIDIncludesCustomers(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerService(db)
	svc := NewOrderService(db)

	id := createTestCustomer(t, customers, "lookup@email.com")
	created, err := svc.Create(&CreateOrderInput{
		OrderNumber: "ORD-LOOKUP",
		TotalAmount: 75,
		Status:      "Completed",
		CustomerIDs: []uint{id},
	})
	require.NoError(t, err)

	fetched, err := svc.GetByID(created.OrderID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "Completed", fetched.Status)
	require.Len(t, fetched.Customers, 1)
	assert.Equal(t, "Test Customer", fetched.Customers[0].FullName)
	assert.Equal(t, "Primary", fetched.Customers[0].Role)
}

func TestGetOrderByIDMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	fetched, err := svc.GetByID(12345)
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestGetOrdersByCustomer(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerService(db)
	svc := NewOrderService(db)

	buyer := createTestCustomer(t, customers, "mine@email.com")
	other := createTestCustomer(t, customers, "other@email.com")

	_, err := svc.Create(&CreateOrderInput{OrderNumber: "ORD-MINE", TotalAmount: 10, CustomerIDs: []uint{buyer}})
	require.NoError(t, err)
	_, err = svc.Create(&CreateOrderInput{OrderNumber: "ORD-OTHER", TotalAmount: 20, CustomerIDs: []uint{other}})
	require.NoError(t, err)

	orders, err := svc.GetByCustomerID(buyer)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-MINE", orders[0].OrderNumber)

	// An unknown customer yields an empty list, not an error.
	orders, err = svc.GetByCustomerID(9999)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestUpdateOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	created, err := svc.Create(&CreateOrderInput{OrderNumber: "ORD-UPD", TotalAmount: 10})
	require.NoError(t, err)

	updated, err := svc.Update(created.OrderID, &CreateOrderInput{
		OrderNumber: "ORD-UPD",
		TotalAmount: 99.99,
		Status:      "Shipped",
		Description: "expedited",
	})
	require.NoError(t, err)
	assert.InDelta(t, 99.99, updated.TotalAmount, 0.001)
	assert.Equal(t, "Shipped", updated.Status)
	assert.Equal(t, "expedited", updated.Description)
}

func TestUpdateOrderDuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.Create(&CreateOrderInput{OrderNumber: "ORD-A", TotalAmount: 10})
	require.NoError(t, err)
	second, err := svc.Create(&CreateOrderInput{OrderNumber: "ORD-B", TotalAmount: 10})
	require.NoError(t, err)

	_, err = svc.Update(second.OrderID, &CreateOrderInput{OrderNumber: "ORD-A", TotalAmount: 10})
	assert.ErrorIs(t, err, ErrDuplicateOrderNumber)
}

func TestUpdateOrderNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.Update(4040, &CreateOrderInput{TotalAmount: 10})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDeleteOrderRemovesLinks(t *testing.T) {
	db := newTestDB(t)
	customers := NewCustomerService(db)
	svc := NewOrderService(db)

	id := createTestCustomer(t, customers, "gone@email.com")
	created, err := svc.Create(&CreateOrderInput{
		OrderNumber: "ORD-GONE",
		TotalAmount: 10,
		CustomerIDs: []uint{id},
	})
	require.NoError(t, err)

	ok, err := svc.Delete(created.OrderID)
	require.NoError(t, err)
	assert.True(t, ok)

	var links int64
	require.NoError(t, db.Model(&models.CustomerOrder{}).
		Where("order_id = ?", created.OrderID).Count(&links).Error)
	assert.Zero(t, links)

	ok, err = svc.Delete(created.OrderID)
	require.NoError(t, err)
	assert.False(t, ok)
}
