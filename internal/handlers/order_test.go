package handlers

import (
	"strings"
	"testing"
)

func TestResolvePaymentMethod(t *testing.T) {
	name, err := resolvePaymentMethod("momo")
	if err != nil {
		t.Fatalf("resolvePaymentMethod returned error: %v", err)
	}
	if name != "Ví MoMo" {
		t.Fatalf("unexpected method name: %q", name)
	}
}

func TestResolvePaymentMethodUnknown(t *testing.T) {
	if _, err := resolvePaymentMethod("paypal"); err == nil {
		t.Fatal("expected error for unknown payment method")
	}
}

func TestOrderConfirmationMessage(t *testing.T) {
	msg := orderConfirmation("Ví MoMo")
	if !strings.Contains(msg, "Ví MoMo") {
		t.Fatalf("confirmation must name the chosen method: %q", msg)
	}
	if !strings.Contains(msg, "Đơn hàng đang được khởi tạo!") {
		t.Fatalf("unexpected confirmation text: %q", msg)
	}
}
