package outbound

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/mmynk/devarc/internal/models"
	"github.com/mmynk/devarc/internal/money"
	"github.com/mmynk/devarc/internal/render"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(11) 98765-4321", "5511987654321"},
		{"+55 11 98765-4321", "5511987654321"},
		{"11987654321", "5511987654321"},
		{"123", "55123"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_NoDigits(t *testing.T) {
	for _, in := range []string{"", "n/a", "  -  "} {
		_, err := Normalize(in)
		var ve *models.ValidationError
		if !errors.As(err, &ve) || ve.Field != "phone" {
			t.Errorf("Normalize(%q) err = %v, want phone ValidationError", in, err)
		}
	}
}

func TestLink(t *testing.T) {
	link := Link("5511987654321", "Olá *Ana* & cia + R$ 10,00")
	if !strings.HasPrefix(link, "https://wa.me/5511987654321?text=") {
		t.Fatalf("Link() = %q", link)
	}
	if strings.Contains(link, "+") || strings.Contains(link, " ") {
		t.Errorf("Link() = %q, want spaces as %%20", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("url.Parse failed: %v", err)
	}
	if got := u.Query().Get("text"); got != "Olá *Ana* & cia + R$ 10,00" {
		t.Errorf("decoded text = %q", got)
	}
}

func TestCompose(t *testing.T) {
	client := models.Client{Name: "Ana", Phone: "(11) 98765-4321"}
	project := models.Project{Name: "App", Value: money.New(100)}

	msg, err := Compose(client, project, render.MessageOverdue)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if msg.Phone != "5511987654321" {
		t.Errorf("Phone = %q", msg.Phone)
	}
	if !strings.Contains(msg.Text, "não identificamos o pagamento") {
		t.Errorf("Text = %q", msg.Text)
	}
	if !strings.HasPrefix(msg.Link, "https://wa.me/5511987654321?text=") {
		t.Errorf("Link = %q", msg.Link)
	}

	if _, err := Compose(models.Client{Name: "Ana"}, project, render.MessageInvoice); err == nil {
		t.Error("expected error for client without phone")
	}
}
