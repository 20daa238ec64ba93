package handlers

import (
	"net/http"
)

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"service": "spotlight", "status": "ok"}, http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// TablesHandler reports how many tables the schema currently holds. Handy for
// checking that migrations ran.
func (h *Handlers) TablesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	count, err := h.StatsService.GetCountTablesDB()
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeSuccess(w, map[string]int{"tables": count}, http.StatusOK)
}
