package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Bester1/hoenders-sub000/internal/catalog"
	"github.com/Bester1/hoenders-sub000/internal/model"
	"github.com/Bester1/hoenders-sub000/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// order number prefixes distinguish the channel an order came in on
	PortalOrderPrefix = "ORD-CUSTOMER"
	ImportOrderPrefix = "ORD-ADMIN"

	DefaultRetryAttempts  = 3
	DefaultRetryBaseDelay = time.Second

	emailTypeOrderConfirmation = "order_confirmation"
)

// OrderRemoteStore is the slice of the remote repository the submitter
// needs. Remote failures are tolerated, so the submitter only ever inserts.
type OrderRemoteStore interface {
	InsertOrderRows(ctx context.Context, rows []model.OrderRow) error
	InsertOrderItemRows(ctx context.Context, rows []model.OrderItemRow) error
}

// ValidationError carries the full rule-violation list out of Submit so
// the handler can return it to the customer as one response.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "order validation failed: " + strings.Join(e.Errors, "; ")
}

// OrderService runs the checkout pipeline: compose, validate, persist
// locally, mirror remotely, notify, clear cart. The local write is the
// durability bar; remote and notification failures are logged and the
// order still succeeds.
type OrderService struct {
	LocalRepo *repository.OrderLocalRepository
	Remote    OrderRemoteStore
	Queue     *repository.EmailQueueRepository
	Cart      *CartService
	Mailer    EmailSender
	Logger    *zap.Logger
}

func NewOrderService(lr *repository.OrderLocalRepository, remote OrderRemoteStore, q *repository.EmailQueueRepository, cart *CartService, mailer EmailSender, logger *zap.Logger) *OrderService {
	return &OrderService{
		LocalRepo: lr,
		Remote:    remote,
		Queue:     q,
		Cart:      cart,
		Mailer:    mailer,
		Logger:    logger,
	}
}

// NewOrderNumber builds {prefix}-{ISO date}-{epoch millis}.
func NewOrderNumber(prefix string, at time.Time) string {
	return fmt.Sprintf("%s-%s-%d", prefix, at.Format("2006-01-02"), at.UnixMilli())
}

// Submit places the order held in the customer's cart. On validation
// failure nothing is written and the cart is untouched. Once the local log
// has the order the call reports success, whatever the remote store or the
// email relay do.
func (s *OrderService) Submit(ctx context.Context, customerID string, customer model.Customer) (*model.Order, error) {
	cart := s.Cart.Load(customerID)
	summary := s.Cart.Summary(customerID)
	now := time.Now().UTC()

	order := &model.Order{
		OrderNumber:    NewOrderNumber(PortalOrderPrefix, now),
		Customer:       customer,
		Items:          cart,
		Products:       catalog.Snapshot(),
		Timestamp:      now,
		Status:         model.StatusProvisional,
		EstimatedTotal: summary.EstimatedTotal,
		TotalWeightKg:  summary.TotalWeightKg,
		ItemCount:      summary.TotalUnits,
	}

	if res := ValidateOrder(order); !res.IsValid {
		return nil, &ValidationError{Errors: res.Errors}
	}

	// local first: this is the record the order stands on
	if err := s.LocalRepo.AppendOrder(order); err != nil {
		return nil, fmt.Errorf("record order: %w", err)
	}

	orderRows, itemRows := expandOrder(order)
	if err := s.LocalRepo.AppendLineItems(orderRows); err != nil {
		s.Logger.Error("local line-item log write failed",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
	}

	// remote mirror; divergence is tolerated and only logged
	if err := s.Remote.InsertOrderRows(ctx, orderRows); err != nil {
		s.Logger.Error("remote order rows write failed, local copy stands",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
	} else if err := s.Remote.InsertOrderItemRows(ctx, itemRows); err != nil {
		s.Logger.Error("remote detail rows write failed, order rows kept",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
	}

	s.notify(ctx, order)
	s.Cart.Clear(customerID)

	return order, nil
}

// notify renders and sends the confirmation email, recording the outcome
// as a queue entry either way so a failed send can be retried later.
func (s *OrderService) notify(ctx context.Context, order *model.Order) {
	data := templateData(order)
	entry := &model.EmailQueueEntry{
		Type:          emailTypeOrderConfirmation,
		CustomerName:  order.Customer.Name,
		CustomerEmail: order.Customer.Email,
		OrderNumber:   order.OrderNumber,
		Status:        model.EmailPending,
		TemplateData:  data,
	}

	if order.Customer.Email == "" {
		entry.Status = model.EmailError
		if err := s.Queue.Append(entry); err != nil {
			s.Logger.Error("email queue write failed", zap.Error(err))
		}
		return
	}

	subject, body := renderConfirmation(data)
	if err := s.Mailer.Send(ctx, order.Customer.Email, subject, body); err != nil {
		entry.Status = model.EmailFailed
		s.Logger.Warn("confirmation email failed, queued for retry",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
	} else {
		entry.Status = model.EmailSent
	}
	if err := s.Queue.Append(entry); err != nil {
		s.Logger.Error("email queue write failed",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
	}
}

// RetryNotification re-sends the newest failed confirmation for an order
// with exponential backoff. Callers must not run concurrent retries for
// the same order number; nothing here coordinates them.
func (s *OrderService) RetryNotification(ctx context.Context, orderNumber string, maxAttempts int, baseDelay time.Duration) error {
	if maxAttempts <= 0 {
		maxAttempts = DefaultRetryAttempts
	}
	if baseDelay <= 0 {
		baseDelay = DefaultRetryBaseDelay
	}

	entry := s.Queue.LatestFailedForOrder(orderNumber)
	if entry == nil {
		return fmt.Errorf("no failed notification for order %s", orderNumber)
	}
	if entry.CustomerEmail == "" {
		return errors.New("queued notification has no recipient address")
	}

	subject, body := renderConfirmation(entry.TemplateData)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		delay := baseDelay << (attempt - 1)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}

		now := time.Now().UTC()
		entry.RetryCount = attempt
		entry.LastRetryAt = &now

		lastErr = s.Mailer.Send(ctx, entry.CustomerEmail, subject, body)
		if lastErr == nil {
			entry.Status = model.EmailSent
			if err := s.Queue.Update(entry); err != nil {
				s.Logger.Error("email queue update failed", zap.Error(err))
			}
			s.Logger.Info("confirmation email delivered on retry",
				zap.String("order_number", orderNumber), zap.Int("attempt", attempt))
			return nil
		}
		s.Logger.Warn("retry attempt failed",
			zap.String("order_number", orderNumber), zap.Int("attempt", attempt), zap.Error(lastErr))
	}

	entry.Status = model.EmailRetryFailed
	if err := s.Queue.Update(entry); err != nil {
		s.Logger.Error("email queue update failed", zap.Error(err))
	}
	return fmt.Errorf("notification for order %s failed after %d attempts: %w", orderNumber, maxAttempts, lastErr)
}

// SubmitImported writes spreadsheet-imported lines as orders, one order
// per customer email per batch. Imports bypass the interactive validator
// (source rows rarely carry a full address) and send no confirmation; the
// dual-write policy is the same as checkout.
func (s *OrderService) SubmitImported(ctx context.Context, lines []model.ImportedOrderLine) (int, error) {
	if len(lines) == 0 {
		return 0, errors.New("nothing to import")
	}

	groups := make(map[string][]model.ImportedOrderLine)
	var emails []string
	for _, line := range lines {
		// unknown keys and non-positive quantities are rejected here, not
		// deep in the row expansion
		if _, ok := catalog.Get(line.Product); !ok {
			s.Logger.Warn("dropping imported line with unknown product",
				zap.String("product", line.Product), zap.String("email", line.Email))
			continue
		}
		if line.Quantity <= 0 {
			s.Logger.Warn("dropping imported line with non-positive quantity",
				zap.String("product", line.Product), zap.Int("quantity", line.Quantity),
				zap.String("email", line.Email))
			continue
		}
		if _, seen := groups[line.Email]; !seen {
			emails = append(emails, line.Email)
		}
		groups[line.Email] = append(groups[line.Email], line)
	}
	if len(groups) == 0 {
		return 0, errors.New("no importable lines")
	}

	now := time.Now().UTC()
	orders := 0
	for i, email := range emails {
		group := groups[email]
		// spread the epoch suffix so numbers stay unique within the batch
		orderNumber := NewOrderNumber(ImportOrderPrefix, now.Add(time.Duration(i)*time.Millisecond))

		order := &model.Order{
			OrderNumber: orderNumber,
			Customer: model.Customer{
				Name:    group[0].Name,
				Phone:   group[0].Phone,
				Address: group[0].Address,
				Email:   email,
			},
			Items:     model.Cart{},
			Products:  catalog.Snapshot(),
			Timestamp: now,
			Status:    model.StatusProvisional,
		}
		for _, line := range group {
			order.Items[line.Product] = model.CartItem{Quantity: line.Quantity, AddedAt: line.Date}
			order.ItemCount += line.Quantity
			// price from the live catalog, never from the submitted line
			if p, ok := catalog.Get(line.Product); ok {
				order.EstimatedTotal += catalog.LineTotal(p, line.Quantity)
				order.TotalWeightKg += catalog.LineWeightKg(p, line.Quantity)
			}
		}
		order.EstimatedTotal = catalog.Round2(order.EstimatedTotal)
		order.TotalWeightKg = catalog.Round2(order.TotalWeightKg)

		if err := s.LocalRepo.AppendOrder(order); err != nil {
			return orders, fmt.Errorf("record imported order for %s: %w", email, err)
		}
		orderRows, itemRows := expandOrder(order)
		if err := s.LocalRepo.AppendLineItems(orderRows); err != nil {
			s.Logger.Error("local line-item log write failed",
				zap.String("order_number", orderNumber), zap.Error(err))
		}
		if err := s.Remote.InsertOrderRows(ctx, orderRows); err != nil {
			s.Logger.Error("remote order rows write failed, local copy stands",
				zap.String("order_number", orderNumber), zap.Error(err))
		} else if err := s.Remote.InsertOrderItemRows(ctx, itemRows); err != nil {
			s.Logger.Error("remote detail rows write failed, order rows kept",
				zap.String("order_number", orderNumber), zap.Error(err))
		}
		orders++
	}
	return orders, nil
}

// expandOrder denormalizes an order into one row per line item, keyed
// orderNumber-index, plus the per-product detail rows.
func expandOrder(order *model.Order) ([]model.OrderRow, []model.OrderItemRow) {
	keys := sortedKeys(order.Items)
	orderRows := make([]model.OrderRow, 0, len(keys))
	itemRows := make([]model.OrderItemRow, 0, len(keys))

	for i, key := range keys {
		item := order.Items[key]
		p := order.Products[key]
		orderRows = append(orderRows, model.OrderRow{
			ID:              fmt.Sprintf("%s-%d", order.OrderNumber, i),
			OrderNumber:     order.OrderNumber,
			CustomerName:    order.Customer.Name,
			CustomerPhone:   order.Customer.Phone,
			CustomerEmail:   order.Customer.Email,
			DeliveryAddress: order.Customer.Address,
			ProductKey:      key,
			ProductName:     p.Name,
			Quantity:        item.Quantity,
			PricePerKg:      p.PricePerKg,
			LineWeightKg:    catalog.LineWeightKg(p, item.Quantity),
			LineTotal:       catalog.LineTotal(p, item.Quantity),
			Status:          order.Status,
			OrderDate:       order.Timestamp,
		})
		itemRows = append(itemRows, model.OrderItemRow{
			ID:                uuid.NewString(),
			OrderNumber:       order.OrderNumber,
			ProductKey:        key,
			ProductName:       p.Name,
			Category:          string(p.Category),
			Quantity:          item.Quantity,
			PricePerKg:        p.PricePerKg,
			EstimatedWeightKg: p.EstimatedWeightKg,
			LineWeightKg:      catalog.LineWeightKg(p, item.Quantity),
			LineTotal:         catalog.LineTotal(p, item.Quantity),
		})
	}
	return orderRows, itemRows
}

// templateData freezes the minimal order view a retry needs.
func templateData(order *model.Order) model.EmailTemplateData {
	data := model.EmailTemplateData{
		OrderNumber:    order.OrderNumber,
		CustomerName:   order.Customer.Name,
		EstimatedTotal: order.EstimatedTotal,
		TotalWeightKg:  order.TotalWeightKg,
	}
	for _, key := range sortedKeys(order.Items) {
		item := order.Items[key]
		p := order.Products[key]
		data.Lines = append(data.Lines, model.EmailTemplateLine{
			Name:      p.Name,
			Quantity:  item.Quantity,
			LineTotal: catalog.LineTotal(p, item.Quantity),
		})
	}
	return data
}

// renderConfirmation fills the fixed confirmation template.
func renderConfirmation(data model.EmailTemplateData) (subject, htmlBody string) {
	subject = "Bestelling ontvang - " + data.OrderNumber

	var b strings.Builder
	b.WriteString("<p>Hi " + data.CustomerName + ",</p>")
	b.WriteString("<p>Dankie vir jou bestelling! We have received order <strong>" + data.OrderNumber + "</strong>.</p>")
	b.WriteString("<ul>")
	for _, line := range data.Lines {
		b.WriteString(fmt.Sprintf("<li>%d x %s - R%.2f</li>", line.Quantity, line.Name, line.LineTotal))
	}
	b.WriteString("</ul>")
	b.WriteString(fmt.Sprintf("<p>Estimated total: <strong>R%.2f</strong> (about %.1f kg).</p>", data.EstimatedTotal, data.TotalWeightKg))
	b.WriteString("<p>Final amounts are confirmed at weighing. We will be in touch about delivery.</p>")
	b.WriteString("<p>Groete,<br>Die plaas</p>")
	return subject, b.String()
}
