package transport

// LoginRequest carries the admin credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordChangeRequest rotates the admin password.
type PasswordChangeRequest struct {
	Current string `json:"current"`
	New     string `json:"new"`
	Confirm string `json:"confirm"`
}

// EmailUpdateRequest replaces the admin login identifier.
type EmailUpdateRequest struct {
	Email string `json:"email"`
}

// BrandingUpdateRequest edits one branding string or one language entry of a
// localized heading. Language is only consulted for heading fields.
type BrandingUpdateRequest struct {
	Field    string `json:"field"`
	Language string `json:"language,omitempty"`
	Value    string `json:"value"`
}

// SectionCreateRequest appends a section to the page layout. CustomID is only
// meaningful for custom sections.
type SectionCreateRequest struct {
	Type     string `json:"type"`
	CustomID string `json:"customId,omitempty"`
}

// SectionMoveRequest nudges the section at Index one slot up or down.
type SectionMoveRequest struct {
	Index     int    `json:"index"`
	Direction string `json:"direction"`
}

// EntityUpdateRequest edits one field of a catalog entity. Language is
// required for localized fields and ignored for plain ones.
type EntityUpdateRequest struct {
	Field    string `json:"field"`
	Language string `json:"language,omitempty"`
	Value    string `json:"value"`
}

// UploadRequest carries an inline file as base64 payload.
type UploadRequest struct {
	Title    string `json:"title,omitempty"`
	Type     string `json:"type,omitempty"`
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// ChatMessage mirrors a single turn of the advisory conversation.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatRequest asks the advisor a question in the context of a district and
// the conversation so far.
type ChatRequest struct {
	Message  string        `json:"message"`
	History  []ChatMessage `json:"history,omitempty"`
	Language string        `json:"language,omitempty"`
	District string        `json:"district,omitempty"`
}
