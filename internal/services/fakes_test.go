package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"vestora/internal/models/db_models"
)

var errDBDown = errors.New("storage unavailable")

// In-memory repository fakes. They assign IDs on create the way the
// database hook would, so services can reference rows they just wrote.

type fakePlanRepo struct {
	plans map[uuid.UUID]*db_models.Plan
}

func newFakePlanRepo(plans ...*db_models.Plan) *fakePlanRepo {
	r := &fakePlanRepo{plans: make(map[uuid.UUID]*db_models.Plan)}
	for _, p := range plans {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.plans[p.ID] = p
	}
	return r
}

func (r *fakePlanRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Plan, error) {
	return r.plans[id], nil
}

func (r *fakePlanRepo) FindActiveByID(_ context.Context, id uuid.UUID) (*db_models.Plan, error) {
	p := r.plans[id]
	if p == nil || !p.Active {
		return nil, nil
	}
	return p, nil
}

func (r *fakePlanRepo) ListActive(_ context.Context) ([]db_models.Plan, error) {
	var out []db_models.Plan
	for _, p := range r.plans {
		if p.Active {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) ListAll(_ context.Context) ([]db_models.Plan, error) {
	var out []db_models.Plan
	for _, p := range r.plans {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePlanRepo) Create(_ context.Context, plan *db_models.Plan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	r.plans[plan.ID] = plan
	return nil
}

func (r *fakePlanRepo) Update(_ context.Context, plan *db_models.Plan) error {
	r.plans[plan.ID] = plan
	return nil
}

func (r *fakePlanRepo) MaxActiveROI(_ context.Context) (decimal.Decimal, error) {
	max := decimal.Zero
	for _, p := range r.plans {
		if p.Active && p.ROI.GreaterThan(max) {
			max = p.ROI
		}
	}
	return max, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*db_models.User

	referralSink           *fakeReferralRepo
	failCreateWithReferral bool
}

func newFakeUserRepo(users ...*db_models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]*db_models.User)}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*db_models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByReferralCode(_ context.Context, code string) (*db_models.User, error) {
	for _, u := range r.users {
		if u.ReferralCode == code {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *db_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) CreateWithReferral(ctx context.Context, user *db_models.User, referral *db_models.Referral) error {
	if r.failCreateWithReferral {
		return errDBDown
	}
	if err := r.Create(ctx, user); err != nil {
		return err
	}
	if referral == nil {
		return nil
	}
	referral.ReferredID = user.ID
	if r.referralSink != nil {
		return r.referralSink.Create(ctx, referral)
	}
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *db_models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Status == db_models.UserStatusActive {
			n++
		}
	}
	return n, nil
}

type fakeReferralRepo struct {
	referrals []*db_models.Referral
}

func (r *fakeReferralRepo) FindByReferredID(_ context.Context, referredID uuid.UUID) (*db_models.Referral, error) {
	for _, ref := range r.referrals {
		if ref.ReferredID == referredID {
			return ref, nil
		}
	}
	return nil, nil
}

func (r *fakeReferralRepo) ListByReferrer(_ context.Context, referrerID uuid.UUID) ([]db_models.Referral, error) {
	var out []db_models.Referral
	for _, ref := range r.referrals {
		if ref.ReferrerID == referrerID {
			out = append(out, *ref)
		}
	}
	return out, nil
}

func (r *fakeReferralRepo) CountByReferrer(_ context.Context, referrerID uuid.UUID) (int64, error) {
	var n int64
	for _, ref := range r.referrals {
		if ref.ReferrerID == referrerID {
			n++
		}
	}
	return n, nil
}

func (r *fakeReferralRepo) Create(_ context.Context, referral *db_models.Referral) error {
	if referral.ID == uuid.Nil {
		referral.ID = uuid.New()
	}
	r.referrals = append(r.referrals, referral)
	return nil
}

type fakeSettingRepo struct {
	settings map[string]string
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{settings: make(map[string]string)}
}

func (r *fakeSettingRepo) Get(_ context.Context, key string) (*db_models.Setting, error) {
	value, ok := r.settings[key]
	if !ok {
		return nil, nil
	}
	return &db_models.Setting{Key: key, Value: value}, nil
}

func (r *fakeSettingRepo) Upsert(_ context.Context, key string, value string) error {
	r.settings[key] = value
	return nil
}

type fakeInvestmentRepo struct {
	investments []*db_models.Investment
}

func (r *fakeInvestmentRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Investment, error) {
	for _, inv := range r.investments {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInvestmentRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]db_models.Investment, error) {
	var out []db_models.Investment
	for _, inv := range r.investments {
		if inv.UserID == userID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvestmentRepo) ListDueForAccrual(_ context.Context, asOf int64) ([]db_models.Investment, error) {
	var out []db_models.Investment
	for _, inv := range r.investments {
		if inv.Status != db_models.InvestmentStatusActive {
			continue
		}
		if inv.LastProfitDate == nil || *inv.LastProfitDate < asOf {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvestmentRepo) SumActiveAmount(_ context.Context) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, inv := range r.investments {
		if inv.Status == db_models.InvestmentStatusActive {
			sum = sum.Add(inv.Amount)
		}
	}
	return sum, nil
}

func (r *fakeInvestmentRepo) SumAmountByUser(_ context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, inv := range r.investments {
		if inv.UserID == userID {
			sum = sum.Add(inv.Amount)
		}
	}
	return sum, nil
}

func (r *fakeInvestmentRepo) CountActiveByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, inv := range r.investments {
		if inv.UserID == userID && inv.Status == db_models.InvestmentStatusActive {
			n++
		}
	}
	return n, nil
}

type fakeTransactionRepo struct {
	transactions []*db_models.Transaction
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Transaction, error) {
	for _, txn := range r.transactions {
		if txn.ID == id {
			return txn, nil
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]db_models.Transaction, error) {
	var out []db_models.Transaction
	for _, txn := range r.transactions {
		if txn.UserID == userID {
			out = append(out, *txn)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) ListPendingByType(_ context.Context, txnType db_models.TransactionType) ([]db_models.Transaction, error) {
	var out []db_models.Transaction
	for _, txn := range r.transactions {
		if txn.Type == txnType && txn.Status == db_models.TxnStatusPending {
			out = append(out, *txn)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) SumCompletedByUserAndType(_ context.Context, userID uuid.UUID, txnType db_models.TransactionType) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, txn := range r.transactions {
		if txn.UserID != userID || txn.Type != txnType || txn.Status != db_models.TxnStatusCompleted {
			continue
		}
		if txn.Reference == db_models.ReferencePrincipalReturn {
			continue
		}
		sum = sum.Add(txn.Amount)
	}
	return sum, nil
}

type fakeNewsletterRepo struct {
	subs map[string]*db_models.Newsletter
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{subs: make(map[string]*db_models.Newsletter)}
}

func (r *fakeNewsletterRepo) FindByEmail(_ context.Context, email string) (*db_models.Newsletter, error) {
	return r.subs[email], nil
}

func (r *fakeNewsletterRepo) ListActive(_ context.Context) ([]db_models.Newsletter, error) {
	var out []db_models.Newsletter
	for _, sub := range r.subs {
		if sub.Status == db_models.NewsletterStatusActive {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func (r *fakeNewsletterRepo) Create(_ context.Context, sub *db_models.Newsletter) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	r.subs[sub.Email] = sub
	return nil
}

func (r *fakeNewsletterRepo) Update(_ context.Context, sub *db_models.Newsletter) error {
	r.subs[sub.Email] = sub
	return nil
}
