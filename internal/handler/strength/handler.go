package strength

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jwalitptl/passmeter/internal/model"
	"github.com/jwalitptl/passmeter/pkg/errors"
	"github.com/jwalitptl/passmeter/pkg/httputil"
	"github.com/jwalitptl/passmeter/pkg/security"
)

// Service is what the handler needs from the strength service.
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
	r.POST("/check-password", h.CheckPassword)
	r.GET("/generate-password", h.GeneratePassword)
}

// CheckPassword scores the posted password and returns the evaluator's
// score and feedback unchanged.
func (h *Handler) CheckPassword(c *gin.Context) {
	var req model.CheckPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res := h.svc.Check(c.Request.Context(), *req.Password)
	httputil.RespondWithSuccess(c, model.NewCheckPasswordResponse(res))
}

func (h *Handler) GeneratePassword(c *gin.Context) {
	c.JSON(http.StatusOK, model.GeneratePasswordResponse{
		Password: h.svc.Suggest(c.Request.Context()),
	})
}

func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	var tooLarge *http.MaxBytesError

	switch {
	case stderrors.As(err, &verrs):
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
	case stderrors.As(err, &tooLarge):
		_ = c.Error(errors.NewPayloadTooLarge(tooLarge.Limit, err))
	default:
		_ = c.Error(errors.BadRequest("invalid request body", err))
	}
	c.Abort()
}
