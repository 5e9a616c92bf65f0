package form

import (
	"context"
	"embed"
	stderrors "errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/passmeter/internal/model"
	"github.com/jwalitptl/passmeter/pkg/errors"
	"github.com/jwalitptl/passmeter/pkg/httputil"
	"github.com/jwalitptl/passmeter/pkg/security"
)

// PageTemplate is the name the form page is registered under.
const PageTemplate = "index.html"

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded form templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// Service is what the form needs from the strength service.
type Service interface {
	Check(ctx context.Context, password string) security.Result
	Suggest(ctx context.Context) string
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Show)
	r.POST("/", h.Check)
	r.GET("/suggest", h.Suggest)
}

// Show renders the empty form.
func (h *Handler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, PageTemplate, model.StrengthView{})
}

// Check evaluates the submitted password. An empty submission renders the
// form alone.
func (h *Handler) Check(c *gin.Context) {
	var form model.PasswordForm
	if err := c.ShouldBind(&form); err != nil {
		var appErr error = errors.BadRequest("invalid form submission", err)
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			appErr = errors.NewPayloadTooLarge(tooLarge.Limit, err)
		}
		RenderError(c, appErr)
		return
	}

	if form.Password == "" {
		c.HTML(http.StatusOK, PageTemplate, model.StrengthView{})
		return
	}

	ctx := c.Request.Context()
	res := h.svc.Check(ctx, form.Password)
	c.HTML(http.StatusOK, PageTemplate, model.StrengthView{
		Checked:    true,
		Band:       security.Classify(res.Score),
		Feedback:   res.Feedback,
		Suggestion: h.svc.Suggest(ctx),
	})
}

// RenderError renders the form page with err's message and status and
// aborts the chain.
func RenderError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.HTML(httputil.StatusOf(err), PageTemplate, model.StrengthView{Error: httputil.MessageOf(err)})
	c.Abort()
}

// Suggest renders the form with a generated password.
func (h *Handler) Suggest(c *gin.Context) {
	c.HTML(http.StatusOK, PageTemplate, model.StrengthView{
		Suggestion: h.svc.Suggest(c.Request.Context()),
	})
}
