package services

import (
	"errors"

	"github.com/rahulsingh558/the-piquant-pan/internal/models"
)

// ErrSessionClosed is returned when operating on a closed customization session.
var ErrSessionClosed = errors.New("addon session is closed")

// AddonSession tracks one customization session for a single food item.
// Free addons start fully selected (opt-out), premium addons start empty
// (opt-in). The running total is base price plus selected premium prices;
// free addon selection never changes it.
type AddonSession struct {
	food            models.DisplayFood
	selectedFree    []models.Addon
	selectedPremium []models.Addon
	total           float64
	open            bool
}

// NewAddonSession opens a session for the given food.
func NewAddonSession(food models.DisplayFood) *AddonSession {
	s := &AddonSession{
		food:         food,
		selectedFree: FreeAddons(food),
		open:         true,
	}
	s.recalculate()
	return s
}

// ToggleFree toggles a free addon's membership by id.
func (s *AddonSession) ToggleFree(addon models.Addon) error {
	if !s.open {
		return ErrSessionClosed
	}
	s.selectedFree = toggle(s.selectedFree, addon)
	s.recalculate()
	return nil
}

// TogglePremium toggles a premium addon's membership by id.
func (s *AddonSession) TogglePremium(addon models.Addon) error {
	if !s.open {
		return ErrSessionClosed
	}
	s.selectedPremium = toggle(s.selectedPremium, addon)
	s.recalculate()
	return nil
}

// Total is the current session price.
func (s *AddonSession) Total() float64 {
	return s.total
}

// SelectedFree reports whether a free addon is currently selected.
func (s *AddonSession) SelectedFree(id int) bool {
	return contains(s.selectedFree, id)
}

// SelectedPremium reports whether a premium addon is currently selected.
func (s *AddonSession) SelectedPremium(id int) bool {
	return contains(s.selectedPremium, id)
}

// Confirm emits one cart line combining the selected free and premium addons
// and closes the session.
func (s *AddonSession) Confirm() (models.CartLine, error) {
	if !s.open {
		return models.CartLine{}, ErrSessionClosed
	}
	addons := make([]models.Addon, 0, len(s.selectedFree)+len(s.selectedPremium))
	addons = append(addons, s.selectedFree...)
	addons = append(addons, s.selectedPremium...)

	line := models.CartLine{
		FoodID:     s.food.ID,
		Name:       s.food.Name,
		BasePrice:  s.food.BasePrice,
		Addons:     addons,
		Quantity:   1,
		TotalPrice: s.total,
	}
	s.Close()
	return line, nil
}

// Close discards the session state. No persistence side effect.
func (s *AddonSession) Close() {
	s.open = false
	s.selectedFree = nil
	s.selectedPremium = nil
	s.total = 0
}

func (s *AddonSession) recalculate() {
	total := s.food.BasePrice
	for _, a := range s.selectedPremium {
		total += a.Price
	}
	s.total = total
}

func toggle(selected []models.Addon, addon models.Addon) []models.Addon {
	for i, a := range selected {
		if a.ID == addon.ID {
			return append(selected[:i], selected[i+1:]...)
		}
	}
	return append(selected, addon)
}

func contains(selected []models.Addon, id int) bool {
	for _, a := range selected {
		if a.ID == id {
			return true
		}
	}
	return false
}
