package models

// Message represents a message posted by an account
type Message struct {
	ID              uint   `gorm:"primaryKey;column:message_id"`
	PostedBy        uint   `gorm:"column:posted_by;index;not null"`
	MessageText     string `gorm:"column:message_text;size:255;not null"`
	TimePostedEpoch int64  `gorm:"column:time_posted_epoch"`
}

// TableName overrides the table name used by GORM
func (Message) TableName() string {
	return "message"
}

func (m Message) Key() uint { return m.ID }

func (m Message) WithKey(id uint) Message {
	m.ID = id
	return m
}

func (Message) KeyColumn() string { return "message_id" }

func (m Message) Columns() map[string]any {
	return map[string]any{
		"message_id":        m.ID,
		"posted_by":         m.PostedBy,
		"message_text":      m.MessageText,
		"time_posted_epoch": m.TimePostedEpoch,
	}
}
