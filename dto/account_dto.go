package dto

import "socialapi/models"

// AccountDTO is the JSON shape of an account in requests and responses.
type AccountDTO struct {
	AccountID uint   `json:"accountId,omitempty"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

func (d AccountDTO) Model() models.Account {
	return models.Account{ID: d.AccountID, Username: d.Username, Password: d.Password}
}

func FromAccount(a models.Account) AccountDTO {
	return AccountDTO{AccountID: a.ID, Username: a.Username, Password: a.Password}
}
