package chat

import "time"

// Message is one post in a buyer/seller conversation about a pack.
type Message struct {
	ID          string       `json:"id"`
	From        string       `json:"from"`
	Text        string       `json:"text"`
	Attachments []Attachment `json:"attachments,omitempty"`
	ReadAt      *time.Time   `json:"read_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Attachment is an uploaded file as the backend references it.
type Attachment struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	URL         string `json:"url,omitempty"`
}

// Upload is a file selected for sending. An empty ContentType is detected
// from Content. Size is the length the sender declared; when it exceeds
// len(Content) the content was truncated on read and Size is authoritative.
type Upload struct {
	FileName    string
	ContentType string
	Content     []byte
	Size        int64
}

// SendInput is a new outgoing message. AttachmentIDs reference earlier uploads.
type SendInput struct {
	Text          string   `json:"text" validate:"required_without=AttachmentIDs,max=3500"`
	AttachmentIDs []string `json:"attachment_ids,omitempty"`
}

type MessagesFilter struct {
	Page    int
	PerPage int
	Unread  bool
}
