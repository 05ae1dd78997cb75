package directory

import (
	"fmt"

	"github.com/krisalay/simple-nav/catalog"
	"github.com/krisalay/simple-nav/storage"
)

// LastClosedAnnouncementKey stores the id of the latest announcement a visitor dismissed.
const LastClosedAnnouncementKey = "lastClosedAnnouncementId"

// MarkerKey returns the storage key holding visitor's dismissal.
// The empty visitor is the single local visitor and uses LastClosedAnnouncementKey itself.
func MarkerKey(visitor string) string {
	if visitor == "" {
		return LastClosedAnnouncementKey
	}
	return LastClosedAnnouncementKey + ":" + visitor
}

/*
AnnouncementBoard decides whether the banner is shown to a visitor.

The banner is visible until the visitor dismisses it, and shows again as soon as a
newer announcement is published. Each visitor has their own marker, a raw key in
the shared store outside the cache namespace, so clearing the cache does not bring
the banner back.
*/
type AnnouncementBoard struct {
	store         storage.Storage
	announcements []catalog.Announcement
}

// NewAnnouncementBoard builds a board over store.
func NewAnnouncementBoard(store storage.Storage, announcements []catalog.Announcement) *AnnouncementBoard {
	return &AnnouncementBoard{store: store, announcements: announcements}
}

// Latest returns the newest announcement, if any.
func (b *AnnouncementBoard) Latest() (catalog.Announcement, bool) {
	if len(b.announcements) == 0 {
		return catalog.Announcement{}, false
	}
	return b.announcements[len(b.announcements)-1], true
}

// Visible reports whether visitor should see the banner. An unreadable marker counts as not dismissed.
func (b *AnnouncementBoard) Visible(visitor string) bool {
	latest, ok := b.Latest()
	if !ok {
		return false
	}
	closed, found, err := b.store.GetItem(MarkerKey(visitor))
	if err != nil || !found {
		return true
	}
	return closed != latest.ID
}

// Dismiss hides the banner from visitor until a newer announcement appears.
func (b *AnnouncementBoard) Dismiss(visitor string) error {
	latest, ok := b.Latest()
	if !ok {
		return nil
	}
	if err := b.store.SetItem(MarkerKey(visitor), latest.ID); err != nil {
		return fmt.Errorf("dismiss announcement %s: %w", latest.ID, err)
	}
	return nil
}
