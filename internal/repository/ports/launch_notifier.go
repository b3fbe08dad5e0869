package ports

import "context"

type LaunchNotifier interface {
	SendLaunchSubscribed(ctx context.Context, email string) error
}
