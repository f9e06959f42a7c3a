package repository

import "github.com/jackc/pgx/v5/pgxpool"

type Repository struct {
	User  UserRepository
	Child ChildRepository
	Entry EntryRepository
	Post  PostRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		User:  UserRepository{db: db},
		Child: ChildRepository{db: db},
		Entry: EntryRepository{db: db},
		Post:  PostRepository{db: db},
	}
}
