package service

import (
	"math/rand"

	"mhroulette/models"
)

// pickUniform selects one candidate with uniform probability 1/N.
// The randomness source is not cryptographically secure; draws are
// entertainment, not lottery tickets.
func pickUniform(candidates []models.Weapon) (models.Weapon, error) {
	if len(candidates) == 0 {
		return "", ErrEmptyCandidateSet
	}
	return candidates[rand.Intn(len(candidates))], nil
}
