// Package api defines the request and response messages of the devarc.v1 RPC services.
// Messages travel as JSON; field names are camelCase.
package api

import (
	"github.com/mmynk/devarc/internal/date"
	"github.com/mmynk/devarc/internal/lifecycle"
	"github.com/mmynk/devarc/internal/models"
	"github.com/mmynk/devarc/internal/money"
	"github.com/mmynk/devarc/internal/outbound"
	"github.com/mmynk/devarc/internal/stats"
)

// Auth

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User User `json:"user"`
}

// User is the public part of an account.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// Clients

// ClientInput holds the editable fields of a client.
type ClientInput struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	CPF     string `json:"cpf,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone"`
}

type CreateClientRequest struct {
	Client ClientInput `json:"client"`
}

type UpdateClientRequest struct {
	ID     string      `json:"id"`
	Client ClientInput `json:"client"`
}

type ClientResponse struct {
	Client models.Client `json:"client"`
}

type DeleteClientRequest struct {
	ID string `json:"id"`
}

type DeleteClientResponse struct{}

type ListClientsRequest struct{}

type ListClientsResponse struct {
	Clients []models.Client `json:"clients"`
}

// Projects

// ProjectInput holds the editable fields of a project. Status and Type accept the legacy
// labels too; empty values mean Pending and one-time.
type ProjectInput struct {
	Name        string       `json:"name"`
	ClientID    string       `json:"clientId"`
	Status      string       `json:"status,omitempty"`
	Type        string       `json:"type,omitempty"`
	Value       money.Amount `json:"value"`
	DueDate     date.Date    `json:"dueDate,omitzero"`
	StartDate   date.Date    `json:"startDate,omitzero"`
	Description string       `json:"description,omitempty"`
}

type CreateProjectRequest struct {
	Project ProjectInput `json:"project"`
}

type UpdateProjectRequest struct {
	ID      string       `json:"id"`
	Project ProjectInput `json:"project"`
}

type ProjectResponse struct {
	Project models.Project `json:"project"`
}

type DeleteProjectRequest struct {
	ID string `json:"id"`
}

type DeleteProjectResponse struct{}

type GetProjectRequest struct {
	ID string `json:"id"`
}

// ProjectDetail is a project with its ledger, in display order, and derived figures.
type ProjectDetail struct {
	Project         models.Project   `json:"project"`
	Payments        []models.Payment `json:"payments"`
	ProgressPercent float64          `json:"progressPercent"`
	Overdue         bool             `json:"overdue"`
}

type ListProjectsRequest struct {
	// Optional filters.
	Status   string `json:"status,omitempty"`
	ClientID string `json:"clientId,omitempty"`
}

type ListProjectsResponse struct {
	Projects []models.Project `json:"projects"`
}

type TransitionStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type MoveCardRequest struct {
	ID   string         `json:"id"`
	Drag lifecycle.Drag `json:"drag"`
}

// StatusResponse reports the project after a status change; Changed is false when nothing
// was written.
type StatusResponse struct {
	Project models.Project `json:"project"`
	Changed bool           `json:"changed"`
}

type GetBoardRequest struct{}

type GetBoardResponse struct {
	Columns []lifecycle.BoardColumn `json:"columns"`
}

// Tasks

type AddTaskRequest struct {
	ProjectID string `json:"projectId"`
	Desc      string `json:"desc"`
}

type TaskRequest struct {
	ProjectID string `json:"projectId"`
	Index     int    `json:"index"`
}

type TasksResponse struct {
	Tasks []models.Task `json:"tasks"`
}

// Notes

type AddNoteRequest struct {
	ProjectID string `json:"projectId"`
	Text      string `json:"text"`
}

type AddNoteResponse struct {
	Note models.Note `json:"note"`
}

type ListNotesRequest struct {
	ProjectID string `json:"projectId"`
}

type ListNotesResponse struct {
	Notes []models.Note `json:"notes"`
}

// Ledger

type AddPaymentRequest struct {
	ProjectID string       `json:"projectId"`
	Value     money.Amount `json:"value"`
	Date      string       `json:"date"`
	Note      string       `json:"note,omitempty"`
}

type AddPaymentResponse struct {
	Payment         models.Payment `json:"payment"`
	TotalPaid       money.Amount   `json:"totalPaid"`
	ProgressPercent float64        `json:"progressPercent"`
}

type RemovePaymentRequest struct {
	ProjectID string `json:"projectId"`
	PaymentID string `json:"paymentId"`
}

type ListPaymentsRequest struct {
	ProjectID string `json:"projectId"`
}

// LedgerResponse describes a project's ledger after a read or a change.
type LedgerResponse struct {
	Payments        []models.Payment `json:"payments"`
	TotalPaid       money.Amount     `json:"totalPaid"`
	ProgressPercent float64          `json:"progressPercent"`
}

type ReconcileProjectRequest struct {
	ProjectID string `json:"projectId"`
}

type ReconcileProjectResponse struct {
	TotalPaid money.Amount `json:"totalPaid"`
	Repaired  bool         `json:"repaired"`
}

// Expenses

type ExpenseInput struct {
	Description string       `json:"description"`
	Value       money.Amount `json:"value"`
	Date        date.Date    `json:"date,omitzero"`
	Category    string       `json:"category"`
	ClientID    string       `json:"clientId,omitempty"`
	ProjectID   string       `json:"projectId,omitempty"`
}

type CreateExpenseRequest struct {
	Expense ExpenseInput `json:"expense"`
}

type ExpenseResponse struct {
	Expense models.Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ID string `json:"id"`
}

type DeleteExpenseResponse struct{}

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []models.Expense `json:"expenses"`
}

// Settings

type GetSettingsRequest struct{}

type SaveSettingsRequest struct {
	Settings models.CompanySettings `json:"settings"`
}

type SettingsResponse struct {
	Settings models.CompanySettings `json:"settings"`
}

// Documents

type RenderContractRequest struct {
	ProjectID string `json:"projectId"`
}

type RenderContractResponse struct {
	Text string `json:"text"`
}

type ComposeBillingMessageRequest struct {
	ProjectID string `json:"projectId"`
	Kind      string `json:"kind"`
}

type ComposeBillingMessageResponse struct {
	Message outbound.Message `json:"message"`
}

// Stats

type GetStatsRequest struct{}

type GetStatsResponse struct {
	Stats       stats.Stats      `json:"stats"`
	UpcomingDue []models.Project `json:"upcomingDue"`
}

type GetFinancialsRequest struct{}

type GetFinancialsResponse struct {
	Financials stats.Financials `json:"financials"`
}

type WatchStatsRequest struct{}

// WatchStatsResponse is sent once per projects snapshot.
type WatchStatsResponse struct {
	Stats stats.Stats `json:"stats"`
}
