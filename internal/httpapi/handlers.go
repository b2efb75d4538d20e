package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"golang.org/x/text/width"

	"github.com/crandicha/acncheck/pkg/logger"
	"github.com/crandicha/acncheck/pkg/resultstore"
	"github.com/crandicha/acncheck/pkg/validator"
)

// ValidateRequest is the POST /validate body.
type ValidateRequest struct {
	Value *string `json:"value"`
}

// RuleInfo describes one configured rule.
type RuleInfo struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// RulesResponse is the GET /rules payload.
type RulesResponse struct {
	Name           string     `json:"name"`
	SuccessMessage string     `json:"success_message"`
	Rules          []RuleInfo `json:"rules"`
}

func (a *api) validateQuery(w http.ResponseWriter, r *http.Request) {
	a.respond(w, r, a.evaluate(r, r.URL.Query().Get("value")))
}

func (a *api) validateBody(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, a.maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			a.fail(w, r, http.StatusRequestEntityTooLarge, CodeInvalidRequest, "request body too large")
		case errors.Is(err, io.EOF):
			a.fail(w, r, http.StatusBadRequest, CodeInvalidRequest, "request body is empty")
		default:
			a.fail(w, r, http.StatusBadRequest, CodeInvalidRequest, "request body must be a JSON object with a string value")
		}
		return
	}
	if req.Value == nil {
		a.fail(w, r, http.StatusBadRequest, CodeInvalidRequest, "value is required")
		return
	}
	a.respond(w, r, a.evaluate(r, *req.Value))
}

func (a *api) listRules(w http.ResponseWriter, r *http.Request) {
	infos := make([]RuleInfo, 0, len(a.rules))
	for _, rule := range a.rules {
		infos = append(infos, RuleInfo{Name: rule.Name, Message: rule.Message})
	}
	a.respond(w, r, RulesResponse{
		Name:           a.name,
		SuccessMessage: a.successMessage,
		Rules:          infos,
	})
}

func (a *api) evaluate(r *http.Request, value string) resultstore.Result {
	if a.foldWidth {
		value = width.Fold.String(value)
	}
	res := resultstore.Result{
		Value:     value,
		Summary:   validator.Evaluate(a.rules, value, a.successMessage),
		Breakdown: validator.EvaluateAll(a.rules, value),
	}
	a.logger.DebugContext(r.Context(), "value evaluated",
		logger.ValueLength(value),
		logger.Success(res.Summary.Success),
	)
	return res
}
