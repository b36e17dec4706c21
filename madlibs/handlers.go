package madlibs

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-barry/exercises/core"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates holds index.html and story.html at its root.
func Templates() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

type Handler struct {
	story    Story
	renderer *core.Renderer
	logger   *zap.Logger
}

func NewHandler(story Story, renderer *core.Renderer, logger *zap.Logger) *Handler {
	return &Handler{story: story, renderer: renderer, logger: logger}
}

func (h *Handler) Routes(r *core.Router) {
	r.HandleFunc("GET /{$}", h.Index)
	r.HandleFunc("GET /story", h.Story)
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "index.html", map[string]any{
		"Prompts": h.story.Prompts,
	})
}

func (h *Handler) Story(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	answers := h.story.Answers(query.Get)
	text := h.story.Generate(answers)

	h.logger.Debug("Story generated",
		zap.Int("answers", len(answers)),
		zap.String("request_id", core.RequestIDFrom(r.Context())),
	)

	h.render(w, r, "story.html", map[string]any{
		"Story": text,
	})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := h.renderer.Render(w, name, data); err != nil {
		h.logger.Error("Template error", zap.String("template", name), zap.Error(err))
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}
