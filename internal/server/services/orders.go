package services

import (
	"context"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/logging"
	"github.com/slugmart/slugmart/internal/server/models"
	"github.com/slugmart/slugmart/internal/server/repositories/orders"
)

type OrderService struct {
	repo   orders.Repository
	logger logging.Logger
}

func NewOrderService(repo orders.Repository, logger logging.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger.With("module", "orders")}
}

func (s *OrderService) Order(ctx context.Context, id string) (*models.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(ctx, s.logger, "get order", err, common.ErrOrderNotFound)
	}
	return o, nil
}

func (s *OrderService) AllOrders(ctx context.Context) ([]models.Order, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapRepoError(ctx, s.logger, "list orders", err, common.ErrorInternal)
	}
	return list, nil
}

// CreateOrder stores a new order. An empty shipping status means PENDING.
func (s *OrderService) CreateOrder(ctx context.Context, info models.NewOrder) (*models.Order, error) {
	if info.BuyerID == "" || info.SellerID == "" || info.ItemID == "" {
		return nil, common.ErrInvalidInput
	}
	if info.Data != nil && *info.Data == "" {
		return nil, common.ErrInvalidInput
	}
	if info.ShippingStatus == "" {
		info.ShippingStatus = models.ShippingPending
	}
	if !info.ShippingStatus.Valid() {
		return nil, common.ErrInvalidStatus
	}

	o, err := s.repo.Create(ctx, info)
	if err != nil {
		return nil, mapRepoError(ctx, s.logger, "create order", err, common.ErrorInternal)
	}
	s.logger.Info(ctx, "order created", "order_id", o.ID, "status", o.ShippingStatus)
	return o, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, mapRepoError(ctx, s.logger, "delete order", err, common.ErrOrderNotFound)
	}
	return ok, nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status models.ShippingStatus) (bool, error) {
	if !status.Valid() {
		return false, common.ErrInvalidStatus
	}
	ok, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return false, mapRepoError(ctx, s.logger, "update order status", err, common.ErrOrderNotFound)
	}
	return ok, nil
}
