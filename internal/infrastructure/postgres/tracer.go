package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

var _ pgx.QueryTracer = (*QueryTracer)(nil)

type traceKey struct{}

type traceStart struct {
	sql   string
	nargs int
	at    time.Time
}

// QueryTracer registra SQL, cantidad de argumentos y duración de cada consulta.
// Los valores de los argumentos no se registran (pueden incluir passwords).
type QueryTracer struct {
	log zerolog.Logger
}

// NewQueryTracer construye el tracer sobre log.
func NewQueryTracer(log zerolog.Logger) *QueryTracer {
	return &QueryTracer{log: log}
}

func (t *QueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceKey{}, traceStart{sql: data.SQL, nargs: len(data.Args), at: time.Now()})
}

func (t *QueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(traceKey{}).(traceStart)
	if !ok {
		return
	}
	ev := t.log.Debug()
	if data.Err != nil && !isNoRows(data.Err) {
		ev = t.log.Warn().Err(data.Err)
	}
	ev.Str("sql", start.sql).
		Int("args", start.nargs).
		Int64("rows", data.CommandTag.RowsAffected()).
		Dur("took", time.Since(start.at)).
		Msg("query")
}
