// Package models defines the domain records for DevArc.
//
// # Records
//
//   - Client: a customer of the freelancer
//   - Project: work sold to a client; embeds its Task list and caches TotalPaid
//   - Payment: a ledger entry received for a project
//   - Expense: money spent, optionally tagged with a client and project
//   - Note: a timeline update posted on a project
//   - CompanySettings: the per-user company identity and contract template
//   - User: an account owning every record above
//
// # Design Principles
//
// 1. **Plain data**: records carry no behaviour beyond parsing and validation; the ledger,
// lifecycle, stats and render packages operate on them.
// 2. **IDs not pointers**: relationships use ID strings (Project.ClientID, Payment.ProjectID).
// 3. **Write-intents**: mutations computed by the core are expressed as a Batch of
// WriteIntent values that the store applies atomically.
// 4. **Exact money**: amounts are money.Amount, calendar dates are date.Date.
package models
