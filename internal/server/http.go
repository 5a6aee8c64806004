package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/karupanerura/lettercalc/internal/expression"
	"github.com/karupanerura/lettercalc/internal/suite"
	"github.com/karupanerura/lettercalc/internal/types"
	"github.com/samber/lo"
)

var basePathRegexp = regexp.MustCompile(`^/v1/expressions:[a-zA-Z]+$`)

type httpHandler struct{}

func NewHTTPHandler() http.Handler {
	return &httpHandler{}
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !basePathRegexp.MatchString(r.URL.Path) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	customMethod := r.URL.Path[strings.LastIndexByte(r.URL.Path, ':')+1:]
	switch customMethod {
	case "evaluate":
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		h.evaluateExpression(w, r)

	case "batchEvaluate":
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		h.batchEvaluateExpressions(w, r)

	default:
		http.Error(w, "Not Found", http.StatusNotFound)
	}
}

type evaluateRequest struct {
	Expression string `json:"expression"`
}

type evaluateResponse struct {
	Expression string `json:"expression"`
	Result     int64  `json:"result"`
}

func (h *httpHandler) evaluateExpression(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("failed to decode request body: %v", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ret, err := expression.EvaluateExpr(req.Expression)
	if err != nil {
		h.resError(w, err)
		return
	}

	resJSON(w, http.StatusOK, evaluateResponse{
		Expression: req.Expression,
		Result:     ret,
	})
}

type batchEvaluateRequest struct {
	Expressions []string `json:"expressions"`
	Concurrency int      `json:"concurrency"`
}

func (h *httpHandler) batchEvaluateExpressions(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req batchEvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("failed to decode request body: %v", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if len(req.Expressions) == 0 || req.Concurrency < 0 {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	s := &suite.Suite{
		Cases: lo.Map(req.Expressions, func(expr string, _ int) *suite.Case {
			return &suite.Case{Expression: expr}
		}),
	}
	resJSON(w, http.StatusOK, s.Run(req.Concurrency))
}

func (h *httpHandler) resError(w http.ResponseWriter, err error) {
	var syntaxErr *types.SyntaxError
	if errors.As(err, &syntaxErr) {
		resJSON(w, http.StatusBadRequest, map[string]any{"error": syntaxErr})
		return
	}

	var evalErr *types.Error
	if errors.As(err, &evalErr) {
		resJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": evalErr})
		return
	}

	log.Printf("failed to evaluate expression: %v", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func resJSON(w http.ResponseWriter, status int, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(b)+1))
	w.WriteHeader(status)

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}
