package scheduler

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"vestora/internal/services"
)

const defaultAccrualSpec = "0 0 * * *"

// AccrualScheduler runs the daily profit sweep at UTC midnight. The
// sweep is idempotent per investment per UTC day, so an extra run after
// a restart only produces no-ops.
type AccrualScheduler struct {
	cron              *cron.Cron
	investmentService services.InvestmentServiceInterface
}

func NewAccrualScheduler(investmentService services.InvestmentServiceInterface) *AccrualScheduler {
	return &AccrualScheduler{
		cron:              cron.New(cron.WithLocation(time.UTC)),
		investmentService: investmentService,
	}
}

func (s *AccrualScheduler) Start() error {
	spec := os.Getenv("ACCRUAL_CRON")
	if spec == "" {
		spec = defaultAccrualSpec
	}

	_, err := s.cron.AddFunc(spec, s.runSweep)
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("accrual scheduler started, spec=%q", spec)
	return nil
}

func (s *AccrualScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("accrual scheduler stopped")
}

func (s *AccrualScheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	accrued, err := s.investmentService.AccrueDue(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("accrual sweep failed: %v", err)
		return
	}
	log.Printf("accrual sweep done, investments accrued=%d", accrued)
}
