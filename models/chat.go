package models

// ModelSettings holds the completion parameters of a chat.
type ModelSettings struct {
	Temperature      float64 `json:"temperature"`
	MaxTokens        int     `json:"max_tokens"`
	TopP             float64 `json:"top_p"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
	PresencePenalty  float64 `json:"presence_penalty"`
}

// SourceConnection is the summary of the source connection a chat reads from.
type SourceConnection struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	ShortName string `json:"short_name"`
	Status    string `json:"status"`
}

// ChatMessage is a single message of a chat.
//
// Timestamps are kept as the strings the backend sends; they are ISO-8601
// without a guaranteed zone designator.
type ChatMessage struct {
	ID          string      `json:"id"`
	ChatID      string      `json:"chat_id"`
	Content     string      `json:"content"`
	Role        MessageRole `json:"role"`
	CreatedAt   string      `json:"created_at"`
	Attachments []string    `json:"attachments,omitempty"`
}

// Chat is a conversation bound to a sync.
type Chat struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	SyncID           string            `json:"sync_id"`
	Description      *string           `json:"description,omitempty"`
	ModelName        string            `json:"model_name"`
	ModelSettings    ModelSettings     `json:"model_settings"`
	Messages         []ChatMessage     `json:"messages"`
	CreatedAt        string            `json:"created_at"`
	ModifiedAt       string            `json:"modified_at"`
	SourceConnection *SourceConnection `json:"source_connection,omitempty"`
}

// ChatInfo is the sidebar view of a chat: its settings plus the sync it is
// bound to. Sync encodes as null when the sync no longer exists.
type ChatInfo struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   *string       `json:"description,omitempty"`
	ModelName     string        `json:"model_name"`
	ModelSettings ModelSettings `json:"model_settings"`
	SyncID        string        `json:"sync_id"`
	Sync          *Sync         `json:"sync"`
}

// NewChatInfo builds the sidebar view of chat. sync may be nil.
func NewChatInfo(chat Chat, sync *Sync) ChatInfo {
	return ChatInfo{
		ID:            chat.ID,
		Name:          chat.Name,
		Description:   chat.Description,
		ModelName:     chat.ModelName,
		ModelSettings: chat.ModelSettings,
		SyncID:        chat.SyncID,
		Sync:          sync,
	}
}
