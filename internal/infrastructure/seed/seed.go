// Package seed populates an empty directory with the HoteliaSEM demo
// accounts so the marketing site's documented credentials work out of the
// box. Secrets are bcrypt-hashed at seed time; the directory never stores
// them in clear.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/ports"
)

type demoAccount struct {
	id           string
	email        string
	secret       string
	firstName    string
	lastName     string
	phone        string
	role         domain.Role
	profileImage string
	createdAt    string
}

// The fixed demo set shown on the credentials page: 2 admins, 4 hoteliers,
// 6 clients.
var demoAccounts = []demoAccount{
	{"admin-001", "admin@hsem.cm", "Admin@2024!", "Marie", "Ndongo", "+237677123456", domain.RoleAdmin, "/images/avatar-admin.jpg", "2024-01-15T08:00:00Z"},
	{"admin-002", "paul.ekotto@hsem.cm", "AdminSecure123!", "Paul", "Ekotto", "+237699876543", domain.RoleAdmin, "", "2024-02-10T10:30:00Z"},
	{"hotelier-001", "hotel.meridien@hsem.cm", "Hotelier@2024", "Jean-Claude", "Mbarga", "+237677234567", domain.RoleHotelier, "/images/avatar-hotelier.jpg", "2024-03-05T14:20:00Z"},
	{"hotelier-002", "hilton.yaounde@hsem.cm", "HiltonYde2024!", "Sophie", "Atangana", "+237699345678", domain.RoleHotelier, "", "2024-03-20T09:15:00Z"},
	{"hotelier-003", "kribi.beach@hsem.cm", "KribiResort@24", "Emmanuel", "Biya", "+237677456789", domain.RoleHotelier, "", "2024-04-01T11:45:00Z"},
	{"hotelier-004", "plaza.douala@hsem.cm", "PlazaDla2024!", "Françoise", "Ngo Balla", "+237699567890", domain.RoleHotelier, "", "2024-04-15T13:30:00Z"},
	{"client-001", "client@example.com", "Client123!", "Thomas", "Kamdem", "+237677345678", domain.RoleClient, "", "2024-05-10T16:00:00Z"},
	{"client-002", "amelie.fotso@gmail.com", "Amelie@2024", "Amélie", "Fotso", "+237699678901", domain.RoleClient, "", "2024-05-15T10:20:00Z"},
	{"client-003", "kevin.nana@yahoo.fr", "Kevin2024!", "Kevin", "Nana", "+237677789012", domain.RoleClient, "", "2024-06-01T14:30:00Z"},
	{"client-004", "linda.tchoumi@outlook.com", "Linda@Secure24", "Linda", "Tchoumi", "+237699890123", domain.RoleClient, "", "2024-06-10T09:45:00Z"},
	{"client-005", "boris.essomba@gmail.com", "Boris123!Safe", "Boris", "Essomba", "+237677901234", domain.RoleClient, "", "2024-06-20T11:15:00Z"},
	{"client-006", "celine.moukouri@hotmail.fr", "Celine@2024Pass", "Céline", "Moukouri", "+237699012345", domain.RoleClient, "", "2024-07-01T15:50:00Z"},
}

// Run seeds the demo accounts when the directory is empty. A non-empty
// directory is left untouched so real data is never mixed with demo data.
func Run(ctx context.Context, accounts ports.AccountRepository, logger zerolog.Logger) error {
	count, err := accounts.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count accounts: %w", err)
	}
	if count > 0 {
		logger.Debug().Int64("accounts", count).Msg("directory not empty, skipping demo seed")
		return nil
	}

	for _, d := range demoAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.secret), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: hash secret for %s: %w", d.email, err)
		}
		createdAt, err := time.Parse(time.RFC3339, d.createdAt)
		if err != nil {
			return fmt.Errorf("seed: parse timestamp for %s: %w", d.email, err)
		}

		account := &domain.Account{
			ID:           d.id,
			Email:        d.email,
			SecretHash:   string(hash),
			FirstName:    d.firstName,
			LastName:     d.lastName,
			Phone:        d.phone,
			Role:         d.role,
			ProfileImage: d.profileImage,
			Active:       true,
			CreatedAt:    createdAt,
			UpdatedAt:    createdAt,
		}
		if _, err := accounts.Create(ctx, account); err != nil {
			return fmt.Errorf("seed: create %s: %w", d.email, err)
		}
	}

	logger.Info().Int("accounts", len(demoAccounts)).Msg("demo directory seeded")
	return nil
}
