package newsletter_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vestora/internal/repositories"
	"vestora/internal/services"
)

var Module = fx.Provide(
	provideNewsletterService, provideNewsletterRepo)

func provideNewsletterRepo(db *gorm.DB) repositories.INewsletterRepository {
	return repositories.NewNewsletterRepository(db)
}

func provideNewsletterService(newsletterRepo repositories.INewsletterRepository) services.NewsletterServiceInterface {
	return services.NewNewsletterService(newsletterRepo)
}
