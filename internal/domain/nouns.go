package domain

// Dutch articles.
const (
	ArticleDe  = "de"
	ArticleHet = "het"
)

// Nounable types a PolymorphicNoun can point at.
const (
	NounableNormal      = "normal"
	NounableIrregular   = "irregular"
	NounableComposition = "composition"
)

// Adjective with its comparison forms.
type Adjective struct {
	Record
	Word        string `json:"word" validate:"required,max=255"`
	Comparative string `json:"comparative" validate:"max=255"`
	Superlative string `json:"superlative" validate:"max=255"`
}

// NormalNoun follows the regular plural rules.
type NormalNoun struct {
	Record
	Singular   string `json:"singular" validate:"required,max=255"`
	Plural     string `json:"plural" validate:"required,max=255"`
	Article    string `json:"article" validate:"required,oneof=de het" enum:"de,het"`
	Diminutive string `json:"diminutive" validate:"max=255"`
}

// IrregularNoun has a plural that no rule derives.
type IrregularNoun struct {
	Record
	Singular string `json:"singular" validate:"required,max=255"`
	Plural   string `json:"plural" validate:"required,max=255"`
	Article  string `json:"article" validate:"required,oneof=de het" enum:"de,het"`
}

// CompositionNoun is built from two parts, e.g. "fiets" + "pad".
type CompositionNoun struct {
	Record
	Word       string `json:"word" validate:"required,max=255"`
	FirstPart  string `json:"first_part" validate:"required,max=255"`
	SecondPart string `json:"second_part" validate:"required,max=255"`
	Article    string `json:"article" validate:"required,oneof=de het" enum:"de,het"`
}

// PolymorphicNoun points at a normal, irregular or composition noun by
// type and id. The pair is not enforced by a foreign key.
type PolymorphicNoun struct {
	Record
	Word         string `json:"word" validate:"required,max=255"`
	NounableType string `json:"nounable_type" validate:"required,oneof=normal irregular composition" enum:"normal,irregular,composition"`
	NounableID   int64  `json:"nounable_id" validate:"required"`
}

type IrregularProxyNoun struct {
	Record
	Word            string `json:"word" validate:"required,max=255"`
	IrregularNounID int64  `json:"irregular_noun_id" validate:"required"`
}

type NonCompositionProxyNoun struct {
	Record
	Word         string `json:"word" validate:"required,max=255"`
	NormalNounID int64  `json:"normal_noun_id" validate:"required"`
}

// AdjectiveNoun pairs an adjective with a noun, e.g. "het grote huis".
type AdjectiveNoun struct {
	Record
	AdjectiveID       int64  `json:"adjective_id" validate:"required"`
	PolymorphicNounID int64  `json:"polymorphic_noun_id" validate:"required"`
	Phrase            string `json:"phrase" validate:"max=255"`
}
