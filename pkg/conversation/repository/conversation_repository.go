package repository

import "ada/entities"

type ConversationRepository interface {
	Create(c *entities.Conversation) error
	Save(c *entities.Conversation) error
	FindByID(id, userID string) (*entities.Conversation, error)
	LatestByUser(userID string) (*entities.Conversation, error)
	// Delete removes the conversation and cascades to its messages.
	Delete(id string) error

	// AppendMessage adds to the end of the thread; messages are never
	// reordered or edited.
	AppendMessage(m *entities.Message) error
	Messages(conversationID string) ([]entities.Message, error)
	MessageCount(conversationID string) (int64, error)
}
