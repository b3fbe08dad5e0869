package ports

import "context"

type ObjectStorage interface {
	ObjectURL(ctx context.Context, objectName string) (string, error)
}
