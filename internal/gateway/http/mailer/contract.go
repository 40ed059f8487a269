package mailer

import "context"

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
