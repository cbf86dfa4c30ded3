package agents

import "context"

// System defines the interface for agent storage and retrieval operations.
type System interface {
	Create(ctx context.Context, cmd CreateCommand) (*Agent, error)
	Update(ctx context.Context, id string, cmd UpdateCommand) (*Agent, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Agent, error)
	List(ctx context.Context) ([]Agent, error)
	AddDocument(ctx context.Context, id string, doc Document) (*Agent, error)
	AddEndpoint(ctx context.Context, id string, endpoint Endpoint) (*Agent, error)
}
