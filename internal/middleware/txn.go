package middleware

import (
	"itemsapi/internal/database"
	"itemsapi/internal/server"

	"github.com/labstack/echo/v4"
)

// TxMiddleware owns the per-request transaction scope: one unit of work
// per request, committed if the handler chain returns nil, rolled back
// otherwise.
type TxMiddleware struct {
	server *server.Server
}

func NewTxMiddleware(s *server.Server) *TxMiddleware {
	return &TxMiddleware{server: s}
}

// Scope returns a middleware that opens a transaction at request entry
// and stores it in the request context, where repositories pick it up.
// The deferred rollback is a no-op after a successful commit, and it
// also releases the transaction when a downstream panic unwinds past
// this frame.
func (tm *TxMiddleware) Scope() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			tx, err := tm.server.DB.Begin(ctx)
			if err != nil {
				return err
			}
			defer tx.Rollback(ctx)

			c.SetRequest(c.Request().WithContext(database.WithTx(ctx, tx)))

			if err := next(c); err != nil {
				return err
			}

			return tx.Commit(ctx)
		}
	}
}
