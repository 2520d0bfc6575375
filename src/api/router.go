package api

import (
	"budget-tracker/src/handlers"
	"budget-tracker/src/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(transactions handlers.TransactionStore, summaries handlers.SummaryStore, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(allowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/transaction", func(r chi.Router) {
		r.Get("/", handlers.ListTransactions(transactions))
		r.Post("/", handlers.CreateTransaction(transactions))

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handlers.GetTransaction(transactions))
			r.Put("/", handlers.ReplaceTransaction(transactions))
			r.Patch("/", handlers.ModifyTransaction(transactions))
			r.Delete("/", handlers.DeleteTransaction(transactions))
		})
	})

	r.Get("/summary", handlers.GetSummary(summaries))

	return r
}
