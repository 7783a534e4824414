package cli

import (
	"github.com/FelixWeichselgartner/HealthAgent/internal/server"
)

type ServeCmd struct {
	Addr string `default:":5000" help:"Listen address for the planner API."`
}

func (c *ServeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	return server.New(ctx.Store).ListenAndServe(c.Addr)
}
