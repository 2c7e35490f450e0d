// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/devarc/internal/models"
)

// Store defines the persistence operations the services need.
// Every read and write is scoped to one user; records owned by someone else behave as if they
// did not exist. Reads return records in insertion order.
//
// Writes go through Apply only, so that every change the core computes lands in the database
// exactly as the write-intent batch describes it.
type Store interface {
	// User accounts.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	ListClients(ctx context.Context, userID string) ([]models.Client, error)
	GetClient(ctx context.Context, userID, clientID string) (*models.Client, error)

	ListProjects(ctx context.Context, userID string) ([]models.Project, error)
	GetProject(ctx context.Context, userID, projectID string) (*models.Project, error)

	// ListPayments returns the ledger of a project.
	ListPayments(ctx context.Context, userID, projectID string) ([]models.Payment, error)

	ListExpenses(ctx context.Context, userID string) ([]models.Expense, error)
	ListNotes(ctx context.Context, userID, projectID string) ([]models.Note, error)

	// GetSettings returns the user's company settings, or empty settings when none were saved.
	GetSettings(ctx context.Context, userID string) (*models.CompanySettings, error)

	// Apply writes a batch atomically: either every intent is applied or none is.
	// It returns models.ErrConflict when a totalPaid in the batch does not match the ledger
	// it would be stored next to.
	Apply(ctx context.Context, userID string, batch models.Batch) error

	// Close releases any resources held by the store.
	Close() error
}
