package models

// Account is a registered user. Passwords are stored as given.
type Account struct {
	ID       uint   `gorm:"primaryKey;column:account_id"`
	Username string `gorm:"type:text;uniqueIndex;not null"`
	Password string `gorm:"type:text;not null"`
}

// TableName overrides the table name used by GORM
func (Account) TableName() string {
	return "account"
}

func (a Account) Key() uint { return a.ID }

func (a Account) WithKey(id uint) Account {
	a.ID = id
	return a
}

func (Account) KeyColumn() string { return "account_id" }

func (a Account) Columns() map[string]any {
	return map[string]any{
		"account_id": a.ID,
		"username":   a.Username,
		"password":   a.Password,
	}
}
