// Package promo validates and applies promo-code redemption against
// deadline, usage-limit and type constraints.
package promo

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"dreambody/internal/account"
	"dreambody/internal/domain"
	"dreambody/internal/store"
)

// Default usage ceiling backfilled onto codes created before usage
// tracking existed.
const defaultMaxUsage = 9999

// Result is a redemption outcome. Message is surfaced verbatim to the
// client; callers branch on Success, never on the text.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Engine mutates promo usage counters and, for credit codes, wallet
// balances through the account ledger.
type Engine struct {
	store    *store.Store
	accounts *account.Manager
}

// NewEngine returns an engine over the given store and ledger.
func NewEngine(st *store.Store, accounts *account.Manager) *Engine {
	return &Engine{store: st, accounts: accounts}
}

// RedeemCreditPromo redeems a CREDIT code for a wallet top-up. The
// lookup requires both the code string and the CREDIT type, so a
// DISCOUNT code with the same string reads as not found rather than
// leaking its existence.
//
// The usage counter is committed before the wallet credit. A crash
// between the two steps leaves usage incremented and the credit unpaid;
// the reverse order would allow double payouts, so do not swap them.
func (e *Engine) RedeemCreditPromo(userID, promoCode string) (Result, error) {
	codes, version, err := e.store.PromoCodes()
	if err != nil {
		return Result{}, err
	}
	idx := -1
	for i := range codes {
		if codes[i].Code == promoCode && codes[i].Type == domain.PromoTypeCredit {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Result{Message: "Invalid or non-credit code."}, nil
	}
	c := codes[idx]
	if expired(c.Deadline, time.Now()) {
		return Result{Message: "Promo code expired."}, nil
	}
	if c.CurrentUsage >= c.MaxUsage {
		return Result{Message: "Promo code usage limit reached."}, nil
	}

	codes[idx].CurrentUsage++
	if err := e.store.ReplacePromoCodes(codes, version); err != nil {
		return Result{}, err
	}

	amount := amountOf(c.Discount)
	if err := e.accounts.UpdateWalletBalance(userID, amount); err != nil {
		return Result{}, err
	}
	return Result{Success: true, Message: fmt.Sprintf("%s EGY added to wallet!", formatAmount(amount))}, nil
}

// IncrementUsage bumps the usage counter for any code matching by code
// string, regardless of type and without a ceiling check. The purchase
// flow validates the limit before consuming a DISCOUNT code; this
// method deliberately does not re-check it. Unknown codes are a no-op.
func (e *Engine) IncrementUsage(promoCode string) error {
	codes, version, err := e.store.PromoCodes()
	if err != nil {
		return err
	}
	for i := range codes {
		if codes[i].Code == promoCode {
			codes[i].CurrentUsage++
			return e.store.ReplacePromoCodes(codes, version)
		}
	}
	return nil
}

// Save appends a promo code, backfilling the fields that records
// created before usage tracking existed are missing: an unset MaxUsage
// becomes 9999 and an unset Type becomes DISCOUNT.
func (e *Engine) Save(c domain.PromoCode) (domain.PromoCode, error) {
	if c.MaxUsage == 0 {
		c.MaxUsage = defaultMaxUsage
	}
	if c.Type == "" {
		c.Type = domain.PromoTypeDiscount
	}
	codes, version, err := e.store.PromoCodes()
	if err != nil {
		return domain.PromoCode{}, err
	}
	codes = append(codes, c)
	if err := e.store.ReplacePromoCodes(codes, version); err != nil {
		return domain.PromoCode{}, err
	}
	return c, nil
}

// Delete removes the code with the given id; absent ids are a no-op.
func (e *Engine) Delete(id string) error {
	codes, version, err := e.store.PromoCodes()
	if err != nil {
		return err
	}
	out := make([]domain.PromoCode, 0, len(codes))
	removed := false
	for _, c := range codes {
		if c.ID == id {
			removed = true
			continue
		}
		out = append(out, c)
	}
	if !removed {
		return nil
	}
	return e.store.ReplacePromoCodes(out, version)
}

// List returns all promo codes.
func (e *Engine) List() ([]domain.PromoCode, error) {
	codes, _, err := e.store.PromoCodes()
	return codes, err
}

// expired reports whether deadline lies strictly before now. Deadlines
// that fail to parse never expire, matching the lenient date handling
// of earlier releases.
func expired(deadline string, now time.Time) bool {
	t, err := parseDeadline(deadline)
	if err != nil {
		return false
	}
	return t.Before(now)
}

func parseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// amountOf reads the longest numeric prefix of a discount string, so
// "150" and "150 EGP" both credit 150. A string with no leading number
// credits nothing.
func amountOf(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	seenDigit := false
	sawDot := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
			end = i + 1
		case (r == '+' || r == '-') && i == 0:
			end = i + 1
		case r == '.' && !sawDot:
			sawDot = true
			end = i + 1
		default:
			goto done
		}
	}
done:
	if !seenDigit {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return v
}

// formatAmount renders without a trailing ".0" so whole-number credits
// read as "150", not "150.0".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
