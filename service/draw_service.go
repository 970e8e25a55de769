package service

import (
	"context"
	"fmt"

	"mhroulette/events"
	"mhroulette/models"
)

// drawService implements the DrawService interface
type drawService struct {
	profileRepo    ProfileRepository
	eventPublisher EventPublisher
}

// NewDrawService creates a new draw service
func NewDrawService(profileRepo ProfileRepository, eventPublisher EventPublisher) DrawService {
	return &drawService{
		profileRepo:    profileRepo,
		eventPublisher: eventPublisher,
	}
}

// favoriteWeapons converts the stored favorite codes into catalog weapons
func favoriteWeapons(profile *models.Profile) []models.Weapon {
	weapons := make([]models.Weapon, len(profile.FavoriteWeapons))
	for i, w := range profile.FavoriteWeapons {
		weapons[i] = models.Weapon(w)
	}
	return weapons
}

// DrawOne draws uniformly from the catalog minus the profile's bans
func (s *drawService) DrawOne(ctx context.Context, profile *models.Profile) (*models.Profile, models.Weapon, error) {
	return s.drawOne(ctx, profile, profile.PossibleWeapons(), false)
}

// DrawOneFromFavorites draws uniformly from the favorites list.
// Bans are deliberately not applied to favorites; the user curated the
// list themselves.
func (s *drawService) DrawOneFromFavorites(ctx context.Context, profile *models.Profile) (*models.Profile, models.Weapon, error) {
	return s.drawOne(ctx, profile, favoriteWeapons(profile), true)
}

func (s *drawService) drawOne(ctx context.Context, profile *models.Profile, candidates []models.Weapon, fromFavorites bool) (*models.Profile, models.Weapon, error) {
	weapon, err := pickUniform(candidates)
	if err != nil {
		return nil, "", err
	}

	updated, err := s.profileRepo.IncrementDraws(ctx, profile.DiscordID, []models.Weapon{weapon})
	if err != nil {
		return nil, "", fmt.Errorf("failed to record draw: %w", err)
	}

	s.eventPublisher.Emit(ctx, events.WeaponsDrawnEvent{
		DiscordID:     profile.DiscordID,
		Weapons:       []models.Weapon{weapon},
		FromFavorites: fromFavorites,
	})

	return updated, weapon, nil
}

// DrawMany performs n independent draws with replacement over the
// catalog minus bans, recorded in a single batched write
func (s *drawService) DrawMany(ctx context.Context, profile *models.Profile, n int) ([]models.Weapon, error) {
	return s.drawMany(ctx, profile, profile.PossibleWeapons(), n, false)
}

// DrawManyFromFavorites performs n independent draws with replacement
// over the favorites list
func (s *drawService) DrawManyFromFavorites(ctx context.Context, profile *models.Profile, n int) ([]models.Weapon, error) {
	return s.drawMany(ctx, profile, favoriteWeapons(profile), n, true)
}

func (s *drawService) drawMany(ctx context.Context, profile *models.Profile, candidates []models.Weapon, n int, fromFavorites bool) ([]models.Weapon, error) {
	if len(candidates) == 0 {
		return nil, ErrEmptyCandidateSet
	}

	// No upper bound on n is enforced; see the known resource-exhaustion
	// note in DESIGN.md. A non-positive n draws nothing.
	weapons := make([]models.Weapon, 0, max(n, 0))
	for i := 0; i < n; i++ {
		weapon, err := pickUniform(candidates)
		if err != nil {
			return nil, err
		}
		weapons = append(weapons, weapon)
	}

	if len(weapons) > 0 {
		if _, err := s.profileRepo.IncrementDraws(ctx, profile.DiscordID, weapons); err != nil {
			return nil, fmt.Errorf("failed to record draws: %w", err)
		}

		s.eventPublisher.Emit(ctx, events.WeaponsDrawnEvent{
			DiscordID:     profile.DiscordID,
			Weapons:       weapons,
			FromFavorites: fromFavorites,
		})
	}

	return weapons, nil
}
