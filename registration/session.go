package registration

import "context"

type User struct {
	ID    string
	Email string
}

type SessionProvider interface {
	// CurrentUser returns false when nobody is signed in.
	CurrentUser(ctx context.Context) (User, bool)
}
