package services

import (
	"errors"
	"testing"
	"time"

	"vestora/internal/models/db_models"
	"vestora/pkg/utils"
)

func activeInvestment() *db_models.Investment {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return &db_models.Investment{
		Amount:          dec("1000"),
		ROI:             dec("3.0"),
		DurationDays:    30,
		PrincipalReturn: true,
		DailyProfit:     dec("30"),
		TotalReturn:     dec("1900"),
		StartDate:       start.Unix(),
		EndDate:         start.AddDate(0, 0, 30).Unix(),
		Status:          db_models.InvestmentStatusActive,
	}
}

func TestPlanAccrualCreditsOneDay(t *testing.T) {
	inv := activeInvestment()
	watermark := time.Date(2026, 3, 5, 0, 10, 0, 0, time.UTC).Unix()
	inv.ProfitDaysPaid = 4
	inv.LastProfitDate = &watermark

	out, err := planAccrual(inv, time.Date(2026, 3, 6, 0, 10, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.alreadyPaid {
		t.Fatal("next-day accrual treated as already paid")
	}
	if out.profitDaysPaid != 5 {
		t.Errorf("profit days paid = %d, want 5", out.profitDaysPaid)
	}
	if out.matured {
		t.Error("investment matured with 25 days outstanding")
	}
	if !out.principalCredit.IsZero() {
		t.Errorf("principal credit = %s, want 0 before maturity", out.principalCredit)
	}
}

func TestPlanAccrualSameDayIsNoOp(t *testing.T) {
	inv := activeInvestment()
	watermark := time.Date(2026, 3, 5, 0, 10, 0, 0, time.UTC).Unix()
	inv.ProfitDaysPaid = 4
	inv.LastProfitDate = &watermark

	// Second sweep later the same UTC day must not credit a second time.
	out, err := planAccrual(inv, time.Date(2026, 3, 5, 23, 50, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.alreadyPaid {
		t.Error("same-day repeat was not detected by the watermark")
	}
}

func TestPlanAccrualMaturityReturnsPrincipal(t *testing.T) {
	inv := activeInvestment()
	watermark := time.Date(2026, 3, 29, 0, 10, 0, 0, time.UTC).Unix()
	inv.ProfitDaysPaid = 29
	inv.LastProfitDate = &watermark

	out, err := planAccrual(inv, time.Date(2026, 3, 30, 0, 10, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.profitDaysPaid != 30 {
		t.Errorf("profit days paid = %d, want 30", out.profitDaysPaid)
	}
	if !out.matured {
		t.Fatal("final accrual day did not mature the investment")
	}
	if !out.principalCredit.Equal(dec("1000")) {
		t.Errorf("principal credit = %s, want the 1000 invested", out.principalCredit)
	}
}

func TestPlanAccrualMaturityWithoutPrincipalReturn(t *testing.T) {
	inv := activeInvestment()
	inv.PrincipalReturn = false
	watermark := time.Date(2026, 3, 29, 0, 10, 0, 0, time.UTC).Unix()
	inv.ProfitDaysPaid = 29
	inv.LastProfitDate = &watermark

	out, err := planAccrual(inv, time.Date(2026, 3, 30, 0, 10, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.matured {
		t.Fatal("final accrual day did not mature the investment")
	}
	if !out.principalCredit.IsZero() {
		t.Errorf("principal credit = %s, want 0 when the plan keeps the principal", out.principalCredit)
	}
}

func TestPlanAccrualEndDatePassedMatures(t *testing.T) {
	inv := activeInvestment()
	inv.ProfitDaysPaid = 10

	// The sweep fell behind; once now passes end_date the investment
	// completes even with fewer days paid than the duration.
	out, err := planAccrual(inv, time.Date(2026, 4, 15, 0, 10, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.matured {
		t.Error("investment past end_date did not mature")
	}
}

func TestPlanAccrualRejectsTerminalStatus(t *testing.T) {
	for _, status := range []db_models.InvestmentStatus{
		db_models.InvestmentStatusCompleted,
		db_models.InvestmentStatusCancelled,
	} {
		inv := activeInvestment()
		inv.Status = status
		if _, err := planAccrual(inv, time.Now()); !errors.Is(err, utils.ErrInvalidState) {
			t.Errorf("status %s: got %v, want ErrInvalidState", status, err)
		}
	}
}
