// Package render produces contract documents and billing messages. All functions are pure
// and never fail on missing data: absent fields show up as a visible placeholder.
package render

import (
	"strings"

	"github.com/mmynk/devarc/internal/date"
	"github.com/mmynk/devarc/internal/models"
	"github.com/mmynk/devarc/internal/money"
)

// Placeholder stands in for any missing contract field.
const Placeholder = "________________"

// DefaultCompanyName is used when the user has not configured a company.
const DefaultCompanyName = "DevArc"

// Contract tokens.
const (
	TokenClientName     = "{CLIENTE_NOME}"
	TokenClientTaxID    = "{CLIENTE_CPF}"
	TokenProjectName    = "{PROJETO_NOME}"
	TokenValue          = "{VALOR}"
	TokenDate           = "{DATA}"
	TokenCompanyName    = "{EMPRESA_NOME}"
	TokenCompanyTaxID   = "{EMPRESA_CNPJ}"
	TokenCompanyAddress = "{EMPRESA_ENDERECO}"
)

// Tokens lists every token Contract replaces.
var Tokens = []string{
	TokenClientName, TokenClientTaxID, TokenProjectName, TokenValue,
	TokenDate, TokenCompanyName, TokenCompanyTaxID, TokenCompanyAddress,
}

// DefaultContractTemplate is used when the user has no template of their own.
const DefaultContractTemplate = `CONTRATO DE PRESTAÇÃO DE SERVIÇOS

CONTRATANTE: {CLIENTE_NOME}, CPF/CNPJ: {CLIENTE_CPF}.
CONTRATADA: {EMPRESA_NOME}, CNPJ: {EMPRESA_CNPJ}, com sede em {EMPRESA_ENDERECO}.

1. DO OBJETO
O presente contrato tem por objeto a prestação de serviços de desenvolvimento de software, especificamente o projeto "{PROJETO_NOME}".

2. DO VALOR
O valor total é de {VALOR}.

3. DATA
{DATA}
`

// Contract fills the user's contract template for project. client and settings may be nil.
// The client's current name wins over the name copied onto the project.
func Contract(project models.Project, client *models.Client, settings *models.CompanySettings, today date.Date) string {
	tmpl := DefaultContractTemplate
	var company models.Company
	if settings != nil {
		if strings.TrimSpace(settings.ContractTemplate) != "" {
			tmpl = settings.ContractTemplate
		}
		company = settings.Company
	}

	clientName := project.ClientName
	var clientTaxID string
	if client != nil {
		if client.Name != "" {
			clientName = client.Name
		}
		clientTaxID = client.CPF
	}

	r := strings.NewReplacer(
		TokenClientName, or(clientName, Placeholder),
		TokenClientTaxID, or(clientTaxID, Placeholder),
		TokenProjectName, or(project.Name, Placeholder),
		TokenValue, Currency(project.Value),
		TokenDate, or(Date(today), Placeholder),
		TokenCompanyName, or(company.Name, DefaultCompanyName),
		TokenCompanyTaxID, or(company.CNPJ, Placeholder),
		TokenCompanyAddress, or(company.Address, Placeholder),
	)
	return r.Replace(tmpl)
}

// Currency formats a BRL amount: "R$ 1.500,00".
func Currency(a money.Amount) string { return a.Format() }

// Date formats a calendar date as DD/MM/YYYY.
func Date(d date.Date) string { return d.Display() }

func or(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
