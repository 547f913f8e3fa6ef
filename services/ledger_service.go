package services

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// The bookkeeping sandbox: a fixed chart of 12 named accounts and simplified
// double-entry postings (exactly one debit leg and one credit leg per
// transaction, equal amounts). It persists to a single JSON file and is
// never reconciled against the payments/accounts tables. A standalone
// demonstration ledger, not the system of record.

type ChartAccount struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// LedgerChart is the fixed chart of accounts. Postings may only reference
// these codes.
var LedgerChart = []ChartAccount{
	{Code: "1010", Name: "Cash", Category: "asset"},
	{Code: "1020", Name: "Bank", Category: "asset"},
	{Code: "1030", Name: "Accounts Receivable", Category: "asset"},
	{Code: "1040", Name: "Inventory", Category: "asset"},
	{Code: "1050", Name: "Furniture & Equipment", Category: "asset"},
	{Code: "2010", Name: "Accounts Payable", Category: "liability"},
	{Code: "2020", Name: "GST Payable", Category: "liability"},
	{Code: "3010", Name: "Owner Capital", Category: "equity"},
	{Code: "4010", Name: "Room Revenue", Category: "revenue"},
	{Code: "4020", Name: "Restaurant Revenue", Category: "revenue"},
	{Code: "5010", Name: "Salaries Expense", Category: "expense"},
	{Code: "5020", Name: "Supplies Expense", Category: "expense"},
}

func LookupChartAccount(code string) *ChartAccount {
	for i := range LedgerChart {
		if LedgerChart[i].Code == code {
			return &LedgerChart[i]
		}
	}
	return nil
}

// LedgerTransaction is one simplified double-entry posting.
type LedgerTransaction struct {
	ID            int             `json:"id"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	DebitAccount  string          `json:"debit_account"`
	CreditAccount string          `json:"credit_account"`
	Amount        decimal.Decimal `json:"amount"`
}

// AccountBalances computes balance per account: sum of debits posted to it
// minus sum of credits posted to it. Because every transaction debits and
// credits the same amount, the balances always sum to zero.
func AccountBalances(txns []LedgerTransaction) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(LedgerChart))
	for _, acc := range LedgerChart {
		balances[acc.Code] = decimal.Zero
	}
	for _, t := range txns {
		balances[t.DebitAccount] = balances[t.DebitAccount].Add(t.Amount)
		balances[t.CreditAccount] = balances[t.CreditAccount].Sub(t.Amount)
	}
	return balances
}

type ledgerFile struct {
	NextID       int                 `json:"next_id"`
	Transactions []LedgerTransaction `json:"transactions"`
}

type LedgerService struct {
	path string
	mu   sync.Mutex
}

func NewLedgerService(path string) *LedgerService {
	return &LedgerService{path: path}
}

func (s *LedgerService) load() (*ledgerFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ledgerFile{NextID: 1}, nil
		}
		return nil, err
	}

	var lf ledgerFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, err
	}
	if lf.NextID == 0 {
		lf.NextID = len(lf.Transactions) + 1
	}
	return &lf, nil
}

func (s *LedgerService) save(lf *ledgerFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(lf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Post records a transaction: one debit account, one credit account, one
// amount for both legs.
func (s *LedgerService) Post(description, debitAccount, creditAccount string, amount decimal.Decimal, date time.Time) (*LedgerTransaction, error) {
	if LookupChartAccount(debitAccount) == nil {
		return nil, errors.New("unknown_debit_account")
	}
	if LookupChartAccount(creditAccount) == nil {
		return nil, errors.New("unknown_credit_account")
	}
	if debitAccount == creditAccount {
		return nil, errors.New("same_account_both_legs")
	}
	if !amount.IsPositive() {
		return nil, errors.New("invalid_amount")
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lf, err := s.load()
	if err != nil {
		return nil, err
	}

	txn := LedgerTransaction{
		ID:            lf.NextID,
		Date:          date,
		Description:   description,
		DebitAccount:  debitAccount,
		CreditAccount: creditAccount,
		Amount:        amount,
	}
	lf.NextID++
	lf.Transactions = append(lf.Transactions, txn)

	if err := s.save(lf); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (s *LedgerService) List() ([]LedgerTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lf, err := s.load()
	if err != nil {
		return nil, err
	}
	return lf.Transactions, nil
}

func (s *LedgerService) Balances() (map[string]decimal.Decimal, error) {
	txns, err := s.List()
	if err != nil {
		return nil, err
	}
	return AccountBalances(txns), nil
}

// Reset wipes the sandbox.
func (s *LedgerService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(&ledgerFile{NextID: 1})
}
