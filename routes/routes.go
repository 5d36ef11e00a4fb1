package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"socialapi/handlers"
	"socialapi/monitoring"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(accountHandler *handlers.AccountHandler, messageHandler *handlers.MessageHandler, systemHandler *handlers.SystemHandler) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestLogger, monitoring.InstrumentHandler)

	// Account routes
	router.HandleFunc("/register", accountHandler.Register).Methods("POST")
	router.HandleFunc("/login", accountHandler.Login).Methods("POST")

	// Message routes
	router.HandleFunc("/messages", messageHandler.CreateMessage).Methods("POST")
	router.HandleFunc("/messages", messageHandler.GetMessages).Methods("GET")
	router.HandleFunc("/messages/{messageId}", messageHandler.GetMessage).Methods("GET")
	router.HandleFunc("/messages/{messageId}", messageHandler.DeleteMessage).Methods("DELETE")
	router.HandleFunc("/messages/{messageId}", messageHandler.UpdateMessage).Methods("PATCH")
	router.HandleFunc("/accounts/{accountId}/messages", messageHandler.MessagesPerAccount).Methods("GET")

	// System routes
	router.HandleFunc("/health", systemHandler.Health).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return router
}
