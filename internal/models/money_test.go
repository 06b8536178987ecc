package models

import (
	"strings"
	"testing"
	"unicode"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount int64
		digits string
	}{
		{0, "0"},
		{990, "990"},
		{17980, "17980"},
		{79990, "79990"},
		{1234567, "1234567"},
	}

	for _, tt := range tests {
		got := FormatPrice(tt.amount)

		if !strings.HasSuffix(got, "₽") {
			t.Errorf("FormatPrice(%d) = %q, want rouble sign suffix", tt.amount, got)
		}

		var digits strings.Builder
		for _, r := range got {
			if unicode.IsDigit(r) {
				digits.WriteRune(r)
			}
		}
		if digits.String() != tt.digits {
			t.Errorf("FormatPrice(%d) digits = %q, want %q", tt.amount, digits.String(), tt.digits)
		}
	}
}

func TestOrderStatusLabel(t *testing.T) {
	tests := map[OrderStatus]string{
		OrderStatusPending:   "В обработке",
		OrderStatusShipped:   "Отправлен",
		OrderStatusDelivered: "Доставлен",
		OrderStatus("lost"):  "lost",
	}

	for status, want := range tests {
		if got := status.Label(); got != want {
			t.Errorf("%s.Label() = %q, want %q", status, got, want)
		}
	}
}
