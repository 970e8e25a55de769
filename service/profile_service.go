package service

import (
	"context"
	"fmt"

	"mhroulette/events"
	"mhroulette/models"
)

// profileService implements the ProfileService interface
type profileService struct {
	profileRepo    ProfileRepository
	eventPublisher EventPublisher
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo ProfileRepository, eventPublisher EventPublisher) ProfileService {
	return &profileService{
		profileRepo:    profileRepo,
		eventPublisher: eventPublisher,
	}
}

// GetOrCreate resolves the caller's profile, creating it on first touch
func (s *profileService) GetOrCreate(ctx context.Context, discordID int64) (*models.Profile, error) {
	profile, created, err := s.profileRepo.GetOrCreate(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile: %w", err)
	}

	if created {
		s.eventPublisher.Emit(ctx, events.ProfileCreatedEvent{DiscordID: discordID})
	}

	return profile, nil
}

// RecordServerMembership notes that the caller was seen in a guild
func (s *profileService) RecordServerMembership(ctx context.Context, discordID, guildID int64) error {
	if err := s.profileRepo.AddServer(ctx, discordID, guildID); err != nil {
		return fmt.Errorf("failed to record server membership: %w", err)
	}
	return nil
}

// SetBans replaces the banned weapon list wholesale
func (s *profileService) SetBans(ctx context.Context, discordID int64, weapons []string) (*models.Profile, error) {
	for _, w := range weapons {
		if !models.IsValidWeapon(w) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWeapon, w)
		}
	}

	profile, err := s.profileRepo.SetBans(ctx, discordID, weapons)
	if err != nil {
		return nil, fmt.Errorf("failed to set bans: %w", err)
	}
	return profile, nil
}

// ClearBans removes all banned weapons
func (s *profileService) ClearBans(ctx context.Context, discordID int64) (*models.Profile, error) {
	profile, err := s.profileRepo.SetBans(ctx, discordID, []string{})
	if err != nil {
		return nil, fmt.Errorf("failed to clear bans: %w", err)
	}
	return profile, nil
}

// SetFavorites replaces the favorite list, de-duplicating while
// preserving first-seen order
func (s *profileService) SetFavorites(ctx context.Context, discordID int64, weapons []string) (*models.Profile, error) {
	seen := make(map[string]bool, len(weapons))
	deduped := make([]string, 0, len(weapons))
	for _, w := range weapons {
		if !models.IsValidWeapon(w) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWeapon, w)
		}
		if !seen[w] {
			seen[w] = true
			deduped = append(deduped, w)
		}
	}

	profile, err := s.profileRepo.SetFavorites(ctx, discordID, deduped)
	if err != nil {
		return nil, fmt.Errorf("failed to set favorites: %w", err)
	}
	return profile, nil
}

// SetMainWeapon sets the main weapon after validating the short code
func (s *profileService) SetMainWeapon(ctx context.Context, discordID int64, weapon string) (*models.Profile, error) {
	if !models.IsValidWeapon(weapon) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWeapon, weapon)
	}

	profile, err := s.profileRepo.SetMainWeapon(ctx, discordID, weapon)
	if err != nil {
		return nil, fmt.Errorf("failed to set main weapon: %w", err)
	}
	return profile, nil
}

// ResetStats zeroes the caller's draw counters
func (s *profileService) ResetStats(ctx context.Context, discordID int64) error {
	if err := s.profileRepo.ResetDraws(ctx, discordID); err != nil {
		return fmt.Errorf("failed to reset stats: %w", err)
	}

	s.eventPublisher.Emit(ctx, events.StatsResetEvent{DiscordID: discordID})
	return nil
}
