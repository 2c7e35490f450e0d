package render

import (
	"fmt"
	"strings"

	"github.com/mmynk/devarc/internal/models"
)

// MessageKind selects a billing message template.
type MessageKind string

const (
	MessageInvoice  MessageKind = "invoice"
	MessageReminder MessageKind = "reminder"
	MessageOverdue  MessageKind = "overdue"
)

// MessageKinds lists every supported kind.
var MessageKinds = []MessageKind{MessageInvoice, MessageReminder, MessageOverdue}

// ParseMessageKind accepts a kind name in any case.
func ParseMessageKind(s string) (MessageKind, error) {
	k := MessageKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case MessageInvoice, MessageReminder, MessageOverdue:
		return k, nil
	}
	return "", models.Invalid("kind", "must be invoice, reminder or overdue")
}

// NoDueDate replaces the due date in messages about projects that have none.
const NoDueDate = "a combinar"

// BillingMessage composes the text sent to a client about project.
func BillingMessage(kind MessageKind, client models.Client, project models.Project) (string, error) {
	name := or(client.Name, or(project.ClientName, "cliente"))
	value := Currency(project.Value)
	due := or(Date(project.DueDate), NoDueDate)

	switch kind {
	case MessageInvoice:
		return fmt.Sprintf("Olá *%s*,\n\nSegue a fatura referente ao projeto *%s*.\n\nValor: *%s*\nVencimento: *%s*\n\nQualquer dúvida estou à disposição!",
			name, project.Name, value, due), nil
	case MessageReminder:
		return fmt.Sprintf("Olá *%s*, passando para lembrar sobre o vencimento do projeto *%s* em *%s*.\n\nValor: *%s*",
			name, project.Name, due, value), nil
	case MessageOverdue:
		return fmt.Sprintf("Olá *%s*, não identificamos o pagamento do projeto *%s* (Vencimento: %s).\n\nPoderia verificar, por favor?",
			name, project.Name, due), nil
	}
	return "", models.Invalid("kind", fmt.Sprintf("unknown message kind %q", kind))
}
