package domain

// Book is a catalogue entry. Listed with pagination.
type Book struct {
	Record
	Title         string `json:"title" validate:"required,max=255" doc:"Book title"`
	Author        string `json:"author" validate:"required,max=255"`
	ISBN          string `json:"isbn" validate:"max=32"`
	PublishedYear int    `json:"published_year" validate:"gte=0,lte=9999"`
	Description   string `json:"description"`
}

// Review belongs to a book.
type Review struct {
	Record
	BookID   int64  `json:"book_id" validate:"required" doc:"References books.id"`
	Reviewer string `json:"reviewer" validate:"required,max=255"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5" doc:"Score from 1 to 5"`
	Body     string `json:"body"`
}
