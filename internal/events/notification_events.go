package events

import (
	"time"
)

// EventType represents different types of notification events
type EventType string

const (
	// Owner events
	EventOwnerSynced EventType = "owner.synced"

	// Sheet events
	EventSheetCreated  EventType = "sheet.created"
	EventSheetExported EventType = "sheet.exported"

	// Contact events
	EventContactReceived EventType = "contact.received"
)

// NotificationEvent is the base event structure for all notification events
type NotificationEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// OwnerSyncedEvent is emitted when an identity claim is synced into a local
// owner record.
type OwnerSyncedEvent struct {
	OwnerUID string    `json:"owner_uid"`
	Email    string    `json:"email"`
	Created  bool      `json:"created"`
	SyncedAt time.Time `json:"synced_at"`
}

// SheetCreatedEvent is emitted after a sheet and its full structure are
// persisted.
type SheetCreatedEvent struct {
	SheetID          uint   `json:"sheet_id"`
	OwnerUID         string `json:"owner_uid"`
	StudentName      string `json:"student_name"`
	YearsOfStudy     int    `json:"years_of_study"`
	SemestersPerYear int    `json:"semesters_per_year"`
	Mode             string `json:"mode"`
}

// SheetExportedEvent is emitted after a result-sheet document is rendered.
type SheetExportedEvent struct {
	SheetID    uint      `json:"sheet_id"`
	SemesterID *uint     `json:"semester_id,omitempty"`
	Filename   string    `json:"filename"`
	ExportedAt time.Time `json:"exported_at"`
}

// ContactReceivedEvent is emitted when a contact message is persisted.
type ContactReceivedEvent struct {
	MessageID      uint   `json:"message_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	EmailDelivered bool   `json:"email_delivered"`
}
