// Package devseed populates a development database with demo accounts and
// listings so the app is browsable immediately after `db-seed`.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/makaan/makaan-api/internal/adapters/password"
	"github.com/makaan/makaan-api/internal/data"
	"github.com/makaan/makaan-api/internal/domain/model"
	apperrors "github.com/makaan/makaan-api/internal/errors"
)

// DemoPassword is the password for every seeded account.
const DemoPassword = "makaan-dev"

// Services bundles the repositories needed for development seeding.
type Services struct {
	users      *data.UserRepo
	properties *data.PropertyRepo
	inquiries  *data.InquiryRepo
	hasher     *password.Hasher
}

// NewServices constructs the seeding dependencies from the provided DB.
func NewServices(db *sql.DB) Services {
	return Services{
		users:      data.NewUserRepo(db),
		properties: data.NewPropertyRepo(db),
		inquiries:  data.NewInquiryRepo(db),
		// Low cost: these are throwaway dev credentials.
		hasher: password.NewHasher(bcrypt.MinCost),
	}
}

// Run executes the full development seeding workflow. Seeding is idempotent:
// accounts that already exist are reused, and their listings are left alone.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	owner, created, err := svcs.ensureUser(ctx, "Dev Agent", "agent@makaan.local")
	if err != nil {
		return fmt.Errorf("seed agent account: %w", err)
	}
	if _, _, err = svcs.ensureUser(ctx, "Dev Buyer", "buyer@makaan.local"); err != nil {
		return fmt.Errorf("seed buyer account: %w", err)
	}

	if !created {
		if logger != nil {
			logger.InfoContext(ctx, "seed accounts already present, skipping listings")
		}
		return nil
	}

	for _, p := range demoProperties(owner.ID) {
		prop, createErr := svcs.properties.Create(ctx, p)
		if createErr != nil {
			return fmt.Errorf("seed property %q: %w", p.Title, createErr)
		}
		if _, inqErr := svcs.inquiries.Create(ctx, model.Inquiry{
			PropertyID: prop.ID,
			Name:       "Dev Buyer",
			Email:      "buyer@makaan.local",
			Message:    "Seeded inquiry: is this still available?",
		}); inqErr != nil {
			return fmt.Errorf("seed inquiry for %q: %w", p.Title, inqErr)
		}
	}

	if logger != nil {
		logger.InfoContext(ctx, "development data seeded",
			"owner", owner.Email, "password", DemoPassword)
	}
	return nil
}

// ensureUser creates the account or returns the existing one.
func (s Services) ensureUser(ctx context.Context, name, email string) (model.User, bool, error) {
	hash, err := s.hasher.Hash(DemoPassword)
	if err != nil {
		return model.User{}, false, err
	}

	user, err := s.users.Create(ctx, name, email, hash)
	if err == nil {
		return user, true, nil
	}
	if !apperrors.IsConflict(err) {
		return model.User{}, false, err
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return model.User{}, false, err
	}
	return existing, false, nil
}

func demoProperties(ownerID string) []model.Property {
	return []model.Property{
		{
			Title:       "Sunny 2BR apartment near the park",
			Description: "Bright corner unit with new appliances and a shared rooftop.",
			Price:       250000,
			Location:    model.Location{Address: "12 Elm St", City: "Austin", State: "TX", ZipCode: "78701"},
			PropertyType: model.PropertyTypeApartment,
			Status:       model.PropertyStatusForSale,
			Features:     model.Features{Bedrooms: 2, Bathrooms: 1, Area: 85.5},
			OwnerID:      ownerID,
		},
		{
			Title:       "Family house with garden",
			Description: "Four bedrooms, quiet street, renovated kitchen.",
			Price:       550000,
			Location:    model.Location{Address: "44 Oak Ave", City: "Austin", State: "TX", ZipCode: "78704"},
			PropertyType: model.PropertyTypeHouse,
			Status:       model.PropertyStatusForSale,
			Features:     model.Features{Bedrooms: 4, Bathrooms: 2, Area: 210},
			OwnerID:      ownerID,
		},
		{
			Title:       "Lakefront house for rent",
			Description: "Furnished, dock access, twelve-month lease.",
			Price:       2500,
			Location:    model.Location{Address: "7 Shore Rd", City: "Dallas", State: "TX", ZipCode: "75201"},
			PropertyType: model.PropertyTypeHouse,
			Status:       model.PropertyStatusForRent,
			Features:     model.Features{Bedrooms: 3, Bathrooms: 2, Area: 160},
			OwnerID:      ownerID,
		},
	}
}
