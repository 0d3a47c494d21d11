package graph

import (
	"context"

	"github.com/jhoicas/jobboard-api/internal/application/loader"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
)

// RequestContext estado de un request GraphQL. Se crea uno por request.
type RequestContext struct {
	// User nil = anónimo.
	User      *entity.User
	Companies *loader.CompanyLoader
}

type requestContextKey struct{}

// WithRequestContext adjunta rc al contexto.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext devuelve el RequestContext del request; uno vacío si no hay.
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(requestContextKey{}).(*RequestContext); ok && rc != nil {
		return rc
	}
	return &RequestContext{}
}
