package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"socialapi/models"
	"socialapi/repositories"
	"socialapi/repositories/mocks"
	"socialapi/services"
)

var errStoreDown = errors.New("store down")

type mockedHandlers struct {
	accounts   *mocks.MockStore[models.Account]
	messages   *mocks.MockStore[models.Message]
	accountHdl *AccountHandler
	messageHdl *MessageHandler
}

func newMockedHandlers(t *testing.T) mockedHandlers {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockStore[models.Account](ctrl)
	messages := mocks.NewMockStore[models.Message](ctrl)

	accountRepo := repositories.NewAccountRepository(accounts)
	messageRepo := repositories.NewMessageRepository(messages)

	return mockedHandlers{
		accounts:   accounts,
		messages:   messages,
		accountHdl: NewAccountHandler(services.NewAccountService(accountRepo)),
		messageHdl: NewMessageHandler(services.NewMessageService(messageRepo, accountRepo)),
	}
}

func serve(h http.HandlerFunc, method, target, pattern, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc(pattern, h).Methods(method)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	router.ServeHTTP(rr, req)
	return rr
}

func TestStoreFailuresAnswer500(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		m := newMockedHandlers(t)
		m.accounts.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(models.Account{}, errStoreDown)

		rr := serve(m.accountHdl.Register, "POST", "/register", "/register", `{"username":"alice","password":"pass1"}`)
		require.Equal(t, http.StatusInternalServerError, rr.Code)
		require.NotContains(t, rr.Body.String(), "store down")
	})

	t.Run("login", func(t *testing.T) {
		m := newMockedHandlers(t)
		m.accounts.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(models.Account{}, errStoreDown)

		rr := serve(m.accountHdl.Login, "POST", "/login", "/login", `{"username":"alice","password":"pass1"}`)
		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("list messages", func(t *testing.T) {
		m := newMockedHandlers(t)
		m.messages.EXPECT().ListAll(gomock.Any()).Return(nil, errStoreDown)

		rr := serve(m.messageHdl.GetMessages, "GET", "/messages", "/messages", "")
		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("delete message", func(t *testing.T) {
		m := newMockedHandlers(t)
		m.messages.EXPECT().DeleteByID(gomock.Any(), uint(5)).Return(false, errStoreDown)

		rr := serve(m.messageHdl.DeleteMessage, "DELETE", "/messages/5", "/messages/{messageId}", "")
		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestPathIDRejectsNonNumeric(t *testing.T) {
	m := newMockedHandlers(t)

	for _, target := range []string{"/messages/abc", "/messages/-1", "/messages/1.5"} {
		rr := serve(m.messageHdl.GetMessage, "GET", target, "/messages/{messageId}", "")
		require.Equal(t, http.StatusBadRequest, rr.Code, target)
	}

	rr := serve(m.messageHdl.MessagesPerAccount, "GET", "/accounts/x/messages", "/accounts/{accountId}/messages", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHealth(t *testing.T) {
	rr := serve(NewSystemHandler(func() error { return errStoreDown }).Health, "GET", "/health", "/health", "")
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)

	rr = serve(NewSystemHandler(func() error { return nil }).Health, "GET", "/health", "/health", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
