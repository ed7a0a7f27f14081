package handlers_test

import (
	"testing"

	"github.com/stedbrown/ste-clone-bot/internal/bot/handlers"
)

func TestRegisterAllCommands(t *testing.T) {
	t.Parallel()

	registered := handlers.RegisterAllCommands(handlers.HandlerDeps{})

	for _, cmd := range []string{
		"/start",
		"/profilo",
		"/prenota",
		"/appuntamenti",
		"/cancella",
		"/clienti",
	} {
		rh, ok := registered[cmd]
		if !ok {
			t.Errorf("command %s not registered", cmd)
			continue
		}
		if rh.Handler == nil {
			t.Errorf("command %s registered with nil handler", cmd)
		}
	}

	if len(registered["/clienti"].Middleware) == 0 {
		t.Error("/clienti registered without admin middleware")
	}
	if len(registered["/cancella"].Middleware) != 0 {
		t.Error("/cancella should not require admin middleware")
	}
}
