package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"ada/entities"
	"ada/pkg/conversation/repository"
)

type convRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ConversationRepository { return &convRepo{db} }

func (r *convRepo) Create(c *entities.Conversation) error { return r.db.Create(c).Error }

func (r *convRepo) Save(c *entities.Conversation) error { return r.db.Save(c).Error }

func (r *convRepo) FindByID(id, userID string) (*entities.Conversation, error) {
	var c entities.Conversation
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *convRepo) LatestByUser(userID string) (*entities.Conversation, error) {
	var c entities.Conversation
	if err := r.db.Where("user_id = ?", userID).Order("updated_at DESC").First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *convRepo) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", id).Delete(&entities.Message{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Conversation{}).Error
	})
}

func (r *convRepo) AppendMessage(m *entities.Message) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Conversation{}).
			Where("id = ?", m.ConversationID).
			Update("updated_at", time.Now()).Error
	})
}

func (r *convRepo) Messages(conversationID string) ([]entities.Message, error) {
	var out []entities.Message
	if err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *convRepo) MessageCount(conversationID string) (int64, error) {
	var n int64
	if err := r.db.Model(&entities.Message{}).
		Where("conversation_id = ?", conversationID).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
