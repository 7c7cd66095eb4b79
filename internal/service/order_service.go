package service

import (
	"go.uber.org/zap"

	"go-gin-shop-api/internal/domain"
	"go-gin-shop-api/internal/dto"
)

type OrderService struct {
	orders   domain.OrderRepository
	products domain.ProductRepository
	users    domain.UserRepository
	log      *zap.Logger
}

func NewOrderService(orders domain.OrderRepository, products domain.ProductRepository, users domain.UserRepository, log *zap.Logger) *OrderService {
	return &OrderService{orders: orders, products: products, users: users, log: log}
}

func (s *OrderService) GetAllOrders(userID string) ([]domain.Order, error) {
	return s.orders.FindAll(userID)
}

func (s *OrderService) GetOrderByID(id string) (*domain.Order, error) {
	o, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.NotFound("order")
	}
	return o, nil
}

// CreateOrder 先做完所有校验再落一次写入，中途失败不产生任何变更。
// 总价按商品当前价格累计，忽略调用方传入的价格。
// 库存只校验不扣减（履约在别处完成）。
func (s *OrderService) CreateOrder(d *dto.CreateOrderDTO) (*domain.Order, error) {
	u, err := s.users.FindByID(d.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound("user")
	}

	var totalPrice float64
	items := make([]domain.OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		p, err := s.products.FindByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.NotFound("product " + item.ProductID)
		}
		if p.Stock < item.Quantity {
			return nil, domain.Validation("insufficient stock for product " + p.Name)
		}
		totalPrice += p.Price * float64(item.Quantity)
		items = append(items, domain.OrderItem{
			ProductID: p.ID,
			Quantity:  item.Quantity,
			Price:     p.Price,
		})
	}

	o, err := s.orders.Create(domain.NewOrder{
		UserID:     d.UserID,
		Items:      items,
		TotalPrice: totalPrice,
		Status:     domain.StatusPending,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("order created",
		zap.String("id", o.ID),
		zap.String("user", o.UserID),
		zap.Float64("total", o.TotalPrice),
	)
	return o, nil
}

func (s *OrderService) UpdateOrderStatus(id string, status domain.OrderStatus) (*domain.Order, error) {
	if _, err := s.GetOrderByID(id); err != nil {
		return nil, err
	}
	updated, err := s.orders.Update(id, domain.OrderPatch{Status: &status})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NotFound("order")
	}
	return updated, nil
}

// CancelOrder 已送达的订单不可取消；其余状态一律放行
func (s *OrderService) CancelOrder(id string) (*domain.Order, error) {
	o, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}
	if o.Status == domain.StatusDelivered {
		return nil, domain.Validation("cannot cancel a delivered order")
	}
	return s.UpdateOrderStatus(id, domain.StatusCancelled)
}

func (s *OrderService) DeleteOrder(id string) error {
	if _, err := s.GetOrderByID(id); err != nil {
		return err
	}
	if _, err := s.orders.Delete(id); err != nil {
		return err
	}
	s.log.Info("order deleted", zap.String("id", id))
	return nil
}
