package store

// Message is a row of the messages table. Timestamps are Unix milliseconds.
type Message struct {
	ID             string
	ConversationID string
	Seq            int64
	SenderID       string
	SenderName     string
	Content        string
	MessageType    string
	AttachmentURL  string
	AttachmentName string
	AttachmentSize int64
	AttachmentMime string
	Status         string
	SentAt         int64
}

// Conversation is a row of the conversations table joined with its members.
type Conversation struct {
	ID                string
	PairKey           string
	LastMessage       string
	LastMessageAt     int64
	LastMessageSender string
	CreatedAt         int64
	Members           []Member
}

// Member is a participant of a conversation with its unread counter.
type Member struct {
	UserID      string
	DisplayName string
	UnreadCount int
}

// Presence is a row of the presence table.
type Presence struct {
	UserID   string
	IsOnline bool
	LastSeen int64
}

// OutboxEntry is a domain event waiting to be exported.
type OutboxEntry struct {
	ID           int64
	EventID      string
	Kind         string
	Key          string
	Payload      []byte
	Status       string // queued, sent, failed
	Attempts     int
	ErrorMessage string
	CreatedAt    int64
}
