package shared

import "context"

// Actor identifies the user recorded against stock-affecting transactions.
type Actor struct {
	ID   string
	Name string
}

// DefaultActor is used when a request carries no actor identity.
var DefaultActor = Actor{ID: "admin", Name: "Admin"}

type actorContextKey struct{}

// ContextWithActor stores the acting user in context.
func ContextWithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext extracts the acting user, falling back to DefaultActor.
func ActorFromContext(ctx context.Context) Actor {
	actor, ok := ctx.Value(actorContextKey{}).(Actor)
	if !ok || actor.ID == "" {
		return DefaultActor
	}
	return actor
}
