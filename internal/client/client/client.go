package client

import "context"

type Client interface {
	Close() error
	Register(ctx context.Context, email, name, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetAPIKey(ctx context.Context, email, password string) (string, error)
}
