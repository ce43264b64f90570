package checkout

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/socialcoffee/ordering-api/cart"
)

// Opener hands a prepared deep link to the environment, e.g. opening a new
// browsing context. Implementations handle the popup-blocked fallback.
type Opener func(url string) error

// WhatsAppSubmitter is the message-handoff checkout strategy: it formats a
// human-readable order summary and opens it as a prefilled wa.me deep link.
// No backend order is created on this path.
type WhatsAppSubmitter struct {
	number string // recipient, digits only with country code
	open   Opener
}

func NewWhatsAppSubmitter(number string, open Opener) *WhatsAppSubmitter {
	return &WhatsAppSubmitter{number: number, open: open}
}

func (s *WhatsAppSubmitter) Submit(_ context.Context, draft Draft, items []cart.LineItem, total float64) (*Result, error) {
	message := FormatOrderMessage(draft, items, total)
	link := fmt.Sprintf("https://wa.me/%s?text=%s", s.number, url.QueryEscape(message))
	if err := s.open(link); err != nil {
		return nil, fmt.Errorf("failed to open messaging link: %w", err)
	}
	// Nothing further gates the handoff, so the submission is terminal.
	return &Result{TotalAmount: total, Terminal: true}, nil
}

// FormatOrderMessage renders the itemized Russian order summary sent over
// the messaging deep link.
func FormatOrderMessage(draft Draft, items []cart.LineItem, total float64) string {
	modeLabel := "Доставка"
	if draft.Mode == ModePickup {
		modeLabel = "Самовывоз"
	}

	lines := []string{
		fmt.Sprintf("Новый заказ (%s)", modeLabel),
		"",
		"Товары:",
	}

	for i, item := range items {
		name := item.Product.NameRus
		if name == "" {
			name = item.Product.NameKaz
		}
		if name == "" {
			name = fmt.Sprintf("Товар %d", i+1)
		}

		line := fmt.Sprintf("%d. %s × %d = %s ₸", i+1, name, item.Quantity, formatAmount(item.TotalPrice))
		if len(item.SelectedOptions) > 0 {
			names := make([]string, len(item.SelectedOptions))
			for j, opt := range item.SelectedOptions {
				names[j] = opt.OptionName
			}
			line += fmt.Sprintf(" (опции: %s)", strings.Join(names, ", "))
		}
		lines = append(lines, line)
	}

	lines = append(lines,
		fmt.Sprintf("Итого: %s ₸", formatAmount(total)),
		"",
		fmt.Sprintf("Имя: %s", draft.ClientName),
		fmt.Sprintf("Телефон: %s", draft.ClientPhone),
	)

	switch draft.Mode {
	case ModeDelivery:
		if draft.Delivery != nil {
			lines = append(lines, fmt.Sprintf("Адрес доставки: %s", draft.Delivery.Address))
			var extra []string
			if draft.Delivery.Apartment != "" {
				extra = append(extra, fmt.Sprintf("кв. %s", draft.Delivery.Apartment))
			}
			if draft.Delivery.Entrance != "" {
				extra = append(extra, fmt.Sprintf("подъезд %s", draft.Delivery.Entrance))
			}
			if draft.Delivery.Floor != "" {
				extra = append(extra, fmt.Sprintf("этаж %s", draft.Delivery.Floor))
			}
			if len(extra) > 0 {
				lines = append(lines, fmt.Sprintf("Детали: %s", strings.Join(extra, ", ")))
			}
		}
	case ModePickup:
		if draft.Pickup != nil {
			lines = append(lines, fmt.Sprintf("Адрес самовывоза: %s", draft.Pickup.Title))
			lines = append(lines, fmt.Sprintf("Полный адрес: %s", draft.Pickup.Address))
			if draft.Pickup.WorkingHours != "" {
				lines = append(lines, fmt.Sprintf("Время работы: %s", draft.Pickup.WorkingHours))
			}
			if draft.Pickup.Phone != "" {
				lines = append(lines, fmt.Sprintf("Телефон точки: %s", draft.Pickup.Phone))
			}
		}
	}

	if draft.Comment != "" {
		lines = append(lines, fmt.Sprintf("Комментарий: %s", draft.Comment))
	}

	return strings.Join(lines, "\n")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
