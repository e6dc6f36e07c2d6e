package accounting

import (
	"fmt"

	"github.com/prodbooks/mfg_ledger/internal/apperrors"
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssemblyJournalInput carries the costed build figures and resolved account
// IDs the journal is constructed from. Excise account IDs are only consulted
// when ExciseAmount is positive.
type AssemblyJournalInput struct {
	MaterialCost decimal.Decimal
	LaborCost    decimal.Decimal
	OverheadCost decimal.Decimal

	FinishedGoodsAccountID   string
	RawMaterialAccountID     string
	LaborAppliedAccountID    string
	OverheadAppliedAccountID string

	ExciseAmount              decimal.Decimal
	ExciseReceivableAccountID string
	ExcisePayableAccountID    string
}

// BuildAssemblyEntries constructs the ledger entries for a posted build.
// The construction rule is fixed, not data-driven:
//
//  1. DEBIT finished goods for the total manufacturing cost.
//  2. CREDIT raw material for the material cost.
//  3. CREDIT labor applied, only when labor cost > 0.
//  4. CREDIT overhead applied, only when overhead cost > 0.
//  5. When excise applies, DEBIT excise receivable and CREDIT excise payable
//     for the duty amount, keeping the transaction self-balancing.
//
// Callers must run ValidateEntriesBalance on the result before persisting.
func BuildAssemblyEntries(in AssemblyJournalInput) []domain.LedgerEntry {
	totalCost := in.MaterialCost.Add(in.LaborCost).Add(in.OverheadCost)

	entries := []domain.LedgerEntry{
		{AccountID: in.FinishedGoodsAccountID, Amount: totalCost, EntryType: domain.Debit, Memo: "Finished goods received from production"},
		{AccountID: in.RawMaterialAccountID, Amount: in.MaterialCost, EntryType: domain.Credit, Memo: "Raw materials issued to production"},
	}
	if in.LaborCost.IsPositive() {
		entries = append(entries, domain.LedgerEntry{
			AccountID: in.LaborAppliedAccountID, Amount: in.LaborCost, EntryType: domain.Credit, Memo: "Labor applied to production",
		})
	}
	if in.OverheadCost.IsPositive() {
		entries = append(entries, domain.LedgerEntry{
			AccountID: in.OverheadAppliedAccountID, Amount: in.OverheadCost, EntryType: domain.Credit, Memo: "Overhead applied to production",
		})
	}
	if in.ExciseAmount.IsPositive() {
		entries = append(entries,
			domain.LedgerEntry{AccountID: in.ExciseReceivableAccountID, Amount: in.ExciseAmount, EntryType: domain.Debit, Memo: "Excise duty on production"},
			domain.LedgerEntry{AccountID: in.ExcisePayableAccountID, Amount: in.ExciseAmount, EntryType: domain.Credit, Memo: "Excise duty payable"},
		)
	}
	return entries
}

// ValidateEntriesBalance checks the double-entry invariant: every entry has a
// positive amount and the debit total equals the credit total exactly, with
// zero tolerance.
func ValidateEntriesBalance(entries []domain.LedgerEntry) error {
	if len(entries) < 2 {
		return fmt.Errorf("%w: fewer than two entries", apperrors.ErrUnbalancedJournal)
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, e := range entries {
		if e.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: entry for account %s has non-positive amount %s",
				apperrors.ErrUnbalancedJournal, e.AccountID, e.Amount.String())
		}
		switch e.EntryType {
		case domain.Debit:
			debits = debits.Add(e.Amount)
		case domain.Credit:
			credits = credits.Add(e.Amount)
		default:
			return fmt.Errorf("%w: unknown entry type %q", apperrors.ErrUnbalancedJournal, e.EntryType)
		}
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits sum to %s, credits sum to %s",
			apperrors.ErrUnbalancedJournal, debits.String(), credits.String())
	}
	return nil
}
