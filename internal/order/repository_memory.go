package order

import "context"

type InMemoryRepository struct {
	Orders []*Record
	Lines  []*LineRecord
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) InsertOrder(_ context.Context, rec *Record) error {
	copied := *rec
	r.Orders = append(r.Orders, &copied)
	return nil
}

func (r *InMemoryRepository) InsertLine(_ context.Context, line *LineRecord) error {
	copied := *line
	r.Lines = append(r.Lines, &copied)
	return nil
}
