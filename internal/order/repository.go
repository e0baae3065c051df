package order

import "context"

type Repository interface {
	InsertOrder(ctx context.Context, rec *Record) error
	InsertLine(ctx context.Context, line *LineRecord) error
}
