package dto

import (
	"github.com/samber/lo"

	"socialapi/models"
)

// MessageDTO is the JSON shape of a message in requests and responses.
type MessageDTO struct {
	MessageID       uint   `json:"messageId,omitempty"`
	PostedBy        uint   `json:"postedBy"`
	MessageText     string `json:"messageText"`
	TimePostedEpoch int64  `json:"timePostedEpoch"`
}

// UpdateMessageDTO is the body of a message edit. A missing messageText
// decodes to nil.
type UpdateMessageDTO struct {
	MessageText *string `json:"messageText"`
}

func (d MessageDTO) Model() models.Message {
	return models.Message{
		ID:              d.MessageID,
		PostedBy:        d.PostedBy,
		MessageText:     d.MessageText,
		TimePostedEpoch: d.TimePostedEpoch,
	}
}

func FromMessage(m models.Message) MessageDTO {
	return MessageDTO{
		MessageID:       m.ID,
		PostedBy:        m.PostedBy,
		MessageText:     m.MessageText,
		TimePostedEpoch: m.TimePostedEpoch,
	}
}

func FromMessages(messages []models.Message) []MessageDTO {
	return lo.Map(messages, func(m models.Message, _ int) MessageDTO {
		return FromMessage(m)
	})
}
