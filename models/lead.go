package models

import (
	"strconv"
	"time"
)

// Lead is a captured booking intent: who asked, for how many screens, and
// which slot (if any) they accepted. Recorded locally and forwarded to the
// downstream automation webhook.
type Lead struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone" json:"phone"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	Screens   int       `bson:"screens" json:"screens"`
	SlotStart time.Time `bson:"slotStart,omitempty" json:"slotStart,omitempty"`
	SlotEnd   time.Time `bson:"slotEnd,omitempty" json:"slotEnd,omitempty"`
	Session   string    `bson:"session,omitempty" json:"session,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Fields flattens the lead into the string map the automation webhook expects.
func (l Lead) Fields() map[string]string {
	fields := map[string]string{
		"lead_id": l.ID,
		"name":    l.Name,
		"phone":   l.Phone,
		"address": l.Address,
		"screens": strconv.Itoa(l.Screens),
	}
	if !l.SlotStart.IsZero() {
		fields["slot_start"] = l.SlotStart.Format(time.RFC3339)
		fields["slot_end"] = l.SlotEnd.Format(time.RFC3339)
	}
	return fields
}
