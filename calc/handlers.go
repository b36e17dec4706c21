package calc

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-barry/exercises/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var greetings = []struct {
	path string
	text string
}{
	{"/welcome", "welcome"},
	{"/welcome/home", "welcome home"},
	{"/welcome/back", "welcome back"},
}

type Handler struct {
	logger     *zap.Logger
	operations *prometheus.CounterVec
}

func NewHandler(logger *zap.Logger, reg prometheus.Registerer) *Handler {
	return &Handler{
		logger: logger,
		operations: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "calc_operations_total",
				Help: "Arithmetic operations served, partitioned by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
	}
}

func (h *Handler) Routes(r *core.Router) {
	for _, g := range greetings {
		r.HandleFunc("GET "+g.path, text(g.text))
	}
	for _, op := range Operations() {
		r.HandleFunc("GET /"+op.String(), h.Operation(op))
	}
	r.HandleFunc("GET /math/{operation}", h.Math)
}

func text(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeText(w, body)
	}
}

// Operation serves a single fixed operation, e.g. GET /add?a=1&b=2.
func (h *Handler) Operation(op Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.calculate(w, r, op)
	}
}

// Math resolves {operation} first, so unknown names are 404 even when the
// operands are bad.
func (h *Handler) Math(w http.ResponseWriter, r *http.Request) {
	op, err := ParseOperation(r.PathValue("operation"))
	if err != nil {
		h.logger.Debug("Unknown operation", zap.String("operation", r.PathValue("operation")))
		core.WriteError(w, err)
		return
	}
	h.calculate(w, r, op)
}

func (h *Handler) calculate(w http.ResponseWriter, r *http.Request, op Operation) {
	result, err := evaluate(r, op)
	if err != nil {
		h.operations.WithLabelValues(op.String(), outcome(err)).Inc()
		h.logger.Warn("Operation failed",
			zap.String("operation", op.String()),
			zap.String("query", r.URL.RawQuery),
			zap.String("request_id", core.RequestIDFrom(r.Context())),
			zap.Error(err),
		)
		core.WriteError(w, err)
		return
	}

	h.operations.WithLabelValues(op.String(), "ok").Inc()
	writeText(w, result.String())
}

func evaluate(r *http.Request, op Operation) (Result, error) {
	q := r.URL.Query()
	a, err := ParseOperand(q, "a")
	if err != nil {
		return Result{}, err
	}
	b, err := ParseOperand(q, "b")
	if err != nil {
		return Result{}, err
	}
	return op.Apply(a, b)
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrInvalidOperand):
		return "invalid_operand"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrOverflow), errors.Is(err, ErrTooManyDigits):
		return "overflow"
	default:
		return "error"
	}
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, body)
}
