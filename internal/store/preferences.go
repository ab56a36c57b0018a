package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/sterling-client/models"
)

// Preference keys.
const (
	DraftKey        = "reservation_draft"
	TutorialSeenKey = "sterling_tutorial_seen"
)

// Preferences keeps small per-device UI state: the unsent reservation form
// and whether the tutorial was dismissed.
type Preferences struct {
	storage StorageService
}

// NewPreferences returns Preferences on top of storage.
func NewPreferences(storage StorageService) *Preferences {
	return &Preferences{storage: storage}
}

// SaveDraft stores draft, replacing the previous one.
func (p *Preferences) SaveDraft(ctx context.Context, draft models.ReservationDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("error encoding draft: %w", err)
	}
	return p.storage.Set(ctx, DraftKey, string(payload))
}

// Draft returns the stored draft. A draft that does not decode is deleted
// and reported as absent.
func (p *Preferences) Draft(ctx context.Context) (models.ReservationDraft, bool, error) {
	payload, ok, err := p.storage.Get(ctx, DraftKey)
	if err != nil || !ok {
		return models.ReservationDraft{}, false, err
	}

	var draft models.ReservationDraft
	if err = json.Unmarshal([]byte(payload), &draft); err != nil {
		return models.ReservationDraft{}, false, p.ClearDraft(ctx)
	}
	return draft, true, nil
}

// ClearDraft deletes the stored draft.
func (p *Preferences) ClearDraft(ctx context.Context) error {
	return p.storage.Remove(ctx, DraftKey)
}

// TutorialSeen reports whether the tutorial was dismissed. Storage errors
// read as "not seen".
func (p *Preferences) TutorialSeen(ctx context.Context) bool {
	v, ok, err := p.storage.Get(ctx, TutorialSeenKey)
	return err == nil && ok && v == "true"
}

// MarkTutorialSeen records that the tutorial was dismissed.
func (p *Preferences) MarkTutorialSeen(ctx context.Context) error {
	return p.storage.Set(ctx, TutorialSeenKey, "true")
}
