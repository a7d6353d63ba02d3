package repository

import "github.com/jackc/pgx/v5/pgxpool"

type Repository struct {
	Profile  ProfileRepository
	Post     PostRepository
	News     NewsRepository
	Comment  CommentRepository
	Question QuestionRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Profile:  ProfileRepository{db: db},
		Post:     PostRepository{db: db},
		News:     NewsRepository{db: db},
		Comment:  CommentRepository{db: db},
		Question: QuestionRepository{db: db},
	}
}
