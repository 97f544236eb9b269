package models

import "github.com/google/uuid"

// NoteIconType tags the note icon payload. Spellings are part of the wire
// and storage format.
type NoteIconType string

const (
	NoteIconEmoji    NoteIconType = "Emoji"
	NoteIconExternal NoteIconType = "External"
)

// DefaultNoteIconData is assigned to every newly created note.
const DefaultNoteIconData = "📦"

// Note is a titled document inside a workspace, optionally nested under a
// parent note. Blocks are not stored inline; they are fetched through the
// block repository keyed by note id.
type Note struct {
	ID          uuid.UUID
	Title       string
	IconType    NoteIconType
	IconData    string
	WorkspaceID uuid.UUID
	ParentNote  uuid.NullUUID
}
