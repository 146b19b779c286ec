package graphql

import (
	"encoding/json"
	"net/http"

	"health-monitor-api/pkg/response"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus"
)

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler serves the schema over POST (JSON body) and GET (query string).
type Handler struct {
	schema  *graphqlgo.Schema
	log     *logrus.Logger
	verbose bool
}

func NewHandler(schema *graphqlgo.Schema, log *logrus.Logger, verbose bool) *Handler {
	return &Handler{
		schema:  schema,
		log:     log,
		verbose: verbose,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request

	switch r.Method {
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
	case http.MethodGet:
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if raw := q.Get("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				response.Error(w, http.StatusBadRequest, "Invalid variables", nil)
				return
			}
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}

	if req.Query == "" {
		response.Error(w, http.StatusBadRequest, "query is required", nil)
		return
	}

	result := h.schema.Exec(r.Context(), req.Query, req.OperationName, req.Variables)
	if h.verbose {
		for _, qe := range result.Errors {
			h.log.WithField("path", qe.Path).Debugf("GraphQL error: %s", qe.Message)
		}
	}

	body, err := json.Marshal(result)
	if err != nil {
		h.log.Warnf("Failed to encode GraphQL response: %+v", err)
		response.InternalServerError(w, "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
