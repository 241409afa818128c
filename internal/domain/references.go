package domain

// Reference is a source citation for a word.
type Reference struct {
	Record
	Word   string `json:"word" validate:"required,max=255"`
	Source string `json:"source"`
}

type NormalNounReference struct {
	Record
	NormalNounID int64 `json:"normal_noun_id" validate:"required"`
	ReferenceID  int64 `json:"reference_id" validate:"required"`
}

type IrregularNounReference struct {
	Record
	IrregularNounID int64 `json:"irregular_noun_id" validate:"required"`
	ReferenceID     int64 `json:"reference_id" validate:"required"`
}

type IrregularProxyNounReference struct {
	Record
	IrregularProxyNounID int64 `json:"irregular_proxy_noun_id" validate:"required"`
	ReferenceID          int64 `json:"reference_id" validate:"required"`
}

type CompositionNounReference struct {
	Record
	CompositionNounID int64 `json:"composition_noun_id" validate:"required"`
	ReferenceID       int64 `json:"reference_id" validate:"required"`
}
