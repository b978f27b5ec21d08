package services

import (
	"context"

	"vestora/internal/models/db_models"
	"vestora/internal/repositories"
	"vestora/pkg/utils"
)

type NewsletterServiceInterface interface {
	Subscribe(ctx context.Context, email string) (*db_models.Newsletter, error)
	Unsubscribe(ctx context.Context, email string) error
	ListActive(ctx context.Context) ([]db_models.Newsletter, error)
}

type NewsletterService struct {
	newsletterRepo repositories.INewsletterRepository
}

func NewNewsletterService(newsletterRepo repositories.INewsletterRepository) NewsletterServiceInterface {
	return &NewsletterService{newsletterRepo: newsletterRepo}
}

func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*db_models.Newsletter, error) {
	existing, err := s.newsletterRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if existing != nil {
		if existing.Status == db_models.NewsletterStatusActive {
			return nil, utils.ErrAlreadySubscribed
		}
		// Resubscribe a previously unsubscribed address.
		existing.Status = db_models.NewsletterStatusActive
		existing.UnsubscribedAt = nil
		if err := s.newsletterRepo.Update(ctx, existing); err != nil {
			return nil, utils.ErrDatabaseError
		}
		return existing, nil
	}

	sub := &db_models.Newsletter{
		Email:  email,
		Status: db_models.NewsletterStatusActive,
	}
	if err := s.newsletterRepo.Create(ctx, sub); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return sub, nil
}

func (s *NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	existing, err := s.newsletterRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil || existing.Status != db_models.NewsletterStatusActive {
		// Unsubscribing an unknown address is not an error worth
		// surfacing to the caller.
		return nil
	}

	now := utils.NowUnixSeconds()
	existing.Status = db_models.NewsletterStatusUnsubscribed
	existing.UnsubscribedAt = &now
	if err := s.newsletterRepo.Update(ctx, existing); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *NewsletterService) ListActive(ctx context.Context) ([]db_models.Newsletter, error) {
	rows, err := s.newsletterRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rows, nil
}
