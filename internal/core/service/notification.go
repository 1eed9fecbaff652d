package service

import (
	"context"
	"fmt"

	"github.com/lainecomfort/storefront/internal/core/domain"
	"github.com/lainecomfort/storefront/internal/port"
)

const orderEmailSubject = "New order!"

// NotificationDispatcher formats a summary of a placed order and
// sends it to fixed staff destinations, email first, then SMS. A
// failed send propagates immediately; the order itself has already
// been persisted by the time this runs and is never rolled back.
type NotificationDispatcher struct {
	email   port.EmailSender
	sms     port.SMSSender
	emailTo string
	smsTo   string
}

func NewNotificationDispatcher(email port.EmailSender, sms port.SMSSender, emailTo, smsTo string) *NotificationDispatcher {
	return &NotificationDispatcher{
		email:   email,
		sms:     sms,
		emailTo: emailTo,
		smsTo:   smsTo,
	}
}

func (d *NotificationDispatcher) NotifyOrderPlaced(ctx context.Context, order domain.Order) error {
	body := fmt.Sprintf(
		"Client name: %s\n"+
			"Products: %s\n"+
			"Total: %s\n"+
			"\n"+
			"Client phone: %d\n"+
			"Address: %s\n"+
			"Quantity: %d",
		order.ClientName, order.ProductName, order.Price.StringFixed(2),
		order.PhoneNumber, order.Address, order.Quantity,
	)

	if err := d.email.Send(ctx, d.emailTo, orderEmailSubject, body); err != nil {
		return fmt.Errorf("send order email: %w", err)
	}

	sms := fmt.Sprintf(
		"Order details:\n\n"+
			"Client name: %s\n"+
			"Phone: %d\n"+
			"Address: %s\n\n"+
			"Product: %s\n"+
			"Quantity: %d\n"+
			"Total price: %s\n",
		order.ClientName, order.PhoneNumber, order.Address,
		order.ProductName, order.Quantity, order.Price.StringFixed(2),
	)

	if err := d.sms.Send(ctx, d.smsTo, sms); err != nil {
		return fmt.Errorf("send order sms: %w", err)
	}

	return nil
}
