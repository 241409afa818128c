package sqldb

import "github.com/grammatica/grammatica-server/internal/domain"

// tables holds one typed table per resource. It is embedded in Store.
type tables struct {
	Books   *Table[domain.Book, *domain.Book]
	Reviews *Table[domain.Review, *domain.Review]

	Adressen               *Table[domain.Adres, *domain.Adres]
	Afbeeldingen           *Table[domain.Afbeelding, *domain.Afbeelding]
	Locaties               *Table[domain.Locatie, *domain.Locatie]
	Politiebureaus         *Table[domain.Politiebureau, *domain.Politiebureau]
	PolitiebureausLocaties *Table[domain.PolitiebureausLocatie, *domain.PolitiebureausLocatie]

	Rules          *Table[domain.Rule, *domain.Rule]
	Adds           *Table[domain.Add, *domain.Add]
	Replaces       *Table[domain.Replace, *domain.Replace]
	Results        *Table[domain.Result, *domain.Result]
	References     *Table[domain.Reference, *domain.Reference]
	RuleReferences *Table[domain.RuleReference, *domain.RuleReference]

	Adjectives               *Table[domain.Adjective, *domain.Adjective]
	NormalNouns              *Table[domain.NormalNoun, *domain.NormalNoun]
	IrregularNouns           *Table[domain.IrregularNoun, *domain.IrregularNoun]
	CompositionNouns         *Table[domain.CompositionNoun, *domain.CompositionNoun]
	PolymorphicNouns         *Table[domain.PolymorphicNoun, *domain.PolymorphicNoun]
	IrregularProxyNouns      *Table[domain.IrregularProxyNoun, *domain.IrregularProxyNoun]
	NonCompositionProxyNouns *Table[domain.NonCompositionProxyNoun, *domain.NonCompositionProxyNoun]
	AdjectiveNouns           *Table[domain.AdjectiveNoun, *domain.AdjectiveNoun]

	NormalNounReferences         *Table[domain.NormalNounReference, *domain.NormalNounReference]
	IrregularNounReferences      *Table[domain.IrregularNounReference, *domain.IrregularNounReference]
	IrregularProxyNounReferences *Table[domain.IrregularProxyNounReference, *domain.IrregularProxyNounReference]
	CompositionNounReferences    *Table[domain.CompositionNounReference, *domain.CompositionNounReference]
}

//nolint:funlen // one block per table
func newTables(s *Store) tables {
	return tables{
		Books: newTable[domain.Book, *domain.Book](s, "books",
			col("title", func(r *domain.Book) any { return &r.Title }),
			col("author", func(r *domain.Book) any { return &r.Author }),
			col("isbn", func(r *domain.Book) any { return &r.ISBN }),
			col("published_year", func(r *domain.Book) any { return &r.PublishedYear }),
			col("description", func(r *domain.Book) any { return &r.Description }),
		),
		Reviews: newTable[domain.Review, *domain.Review](s, "reviews",
			col("book_id", func(r *domain.Review) any { return &r.BookID }),
			col("reviewer", func(r *domain.Review) any { return &r.Reviewer }),
			col("rating", func(r *domain.Review) any { return &r.Rating }),
			col("body", func(r *domain.Review) any { return &r.Body }),
		),

		Adressen: newTable[domain.Adres, *domain.Adres](s, "adres",
			col("straat", func(r *domain.Adres) any { return &r.Straat }),
			col("huisnummer", func(r *domain.Adres) any { return &r.Huisnummer }),
			col("postcode", func(r *domain.Adres) any { return &r.Postcode }),
			col("plaats", func(r *domain.Adres) any { return &r.Plaats }),
		),
		Afbeeldingen: newTable[domain.Afbeelding, *domain.Afbeelding](s, "afbeeldings",
			col("url", func(r *domain.Afbeelding) any { return &r.URL }),
			col("omschrijving", func(r *domain.Afbeelding) any { return &r.Omschrijving }),
		),
		Locaties: newTable[domain.Locatie, *domain.Locatie](s, "locaties",
			col("naam", func(r *domain.Locatie) any { return &r.Naam }),
			col("latitude", func(r *domain.Locatie) any { return &r.Latitude }),
			col("longitude", func(r *domain.Locatie) any { return &r.Longitude }),
			col("adres_id", func(r *domain.Locatie) any { return &r.AdresID }),
		),
		Politiebureaus: newTable[domain.Politiebureau, *domain.Politiebureau](s, "politiebureaus",
			col("naam", func(r *domain.Politiebureau) any { return &r.Naam }),
			col("omschrijving", func(r *domain.Politiebureau) any { return &r.Omschrijving }),
			col("telefoonnummer", func(r *domain.Politiebureau) any { return &r.Telefoonnummer }),
			col("email", func(r *domain.Politiebureau) any { return &r.Email }),
		),
		PolitiebureausLocaties: newTable[domain.PolitiebureausLocatie, *domain.PolitiebureausLocatie](s, "politiebureaus_locaties",
			col("politiebureau_id", func(r *domain.PolitiebureausLocatie) any { return &r.PolitiebureauID }),
			col("locatie_id", func(r *domain.PolitiebureausLocatie) any { return &r.LocatieID }),
		),

		Rules: newTable[domain.Rule, *domain.Rule](s, "rules",
			col("name", func(r *domain.Rule) any { return &r.Name }),
			col("description", func(r *domain.Rule) any { return &r.Description }),
			col("priority", func(r *domain.Rule) any { return &r.Priority }),
		),
		Adds: newTable[domain.Add, *domain.Add](s, "adds",
			col("rule_id", func(r *domain.Add) any { return &r.RuleID }),
			col("value", func(r *domain.Add) any { return &r.Value }),
			col("position", func(r *domain.Add) any { return &r.Position }),
		),
		Replaces: newTable[domain.Replace, *domain.Replace](s, "replaces",
			col("rule_id", func(r *domain.Replace) any { return &r.RuleID }),
			col("search", func(r *domain.Replace) any { return &r.Search }),
			col("replacement", func(r *domain.Replace) any { return &r.Replacement }),
		),
		Results: newTable[domain.Result, *domain.Result](s, "results",
			col("rule_id", func(r *domain.Result) any { return &r.RuleID }),
			col("input", func(r *domain.Result) any { return &r.Input }),
			col("output", func(r *domain.Result) any { return &r.Output }),
		),
		References: newTable[domain.Reference, *domain.Reference](s, "references",
			col("word", func(r *domain.Reference) any { return &r.Word }),
			col("source", func(r *domain.Reference) any { return &r.Source }),
		),
		RuleReferences: newTable[domain.RuleReference, *domain.RuleReference](s, "rule_references",
			col("rule_id", func(r *domain.RuleReference) any { return &r.RuleID }),
			col("reference_id", func(r *domain.RuleReference) any { return &r.ReferenceID }),
		),

		Adjectives: newTable[domain.Adjective, *domain.Adjective](s, "adjectives",
			col("word", func(r *domain.Adjective) any { return &r.Word }),
			col("comparative", func(r *domain.Adjective) any { return &r.Comparative }),
			col("superlative", func(r *domain.Adjective) any { return &r.Superlative }),
		),
		NormalNouns: newTable[domain.NormalNoun, *domain.NormalNoun](s, "normal_nouns",
			col("singular", func(r *domain.NormalNoun) any { return &r.Singular }),
			col("plural", func(r *domain.NormalNoun) any { return &r.Plural }),
			col("article", func(r *domain.NormalNoun) any { return &r.Article }),
			col("diminutive", func(r *domain.NormalNoun) any { return &r.Diminutive }),
		),
		IrregularNouns: newTable[domain.IrregularNoun, *domain.IrregularNoun](s, "irregular_nouns",
			col("singular", func(r *domain.IrregularNoun) any { return &r.Singular }),
			col("plural", func(r *domain.IrregularNoun) any { return &r.Plural }),
			col("article", func(r *domain.IrregularNoun) any { return &r.Article }),
		),
		CompositionNouns: newTable[domain.CompositionNoun, *domain.CompositionNoun](s, "composition_nouns",
			col("word", func(r *domain.CompositionNoun) any { return &r.Word }),
			col("first_part", func(r *domain.CompositionNoun) any { return &r.FirstPart }),
			col("second_part", func(r *domain.CompositionNoun) any { return &r.SecondPart }),
			col("article", func(r *domain.CompositionNoun) any { return &r.Article }),
		),
		PolymorphicNouns: newTable[domain.PolymorphicNoun, *domain.PolymorphicNoun](s, "polymorphic_nouns",
			col("word", func(r *domain.PolymorphicNoun) any { return &r.Word }),
			col("nounable_type", func(r *domain.PolymorphicNoun) any { return &r.NounableType }),
			col("nounable_id", func(r *domain.PolymorphicNoun) any { return &r.NounableID }),
		),
		IrregularProxyNouns: newTable[domain.IrregularProxyNoun, *domain.IrregularProxyNoun](s, "irregular_proxy_nouns",
			col("word", func(r *domain.IrregularProxyNoun) any { return &r.Word }),
			col("irregular_noun_id", func(r *domain.IrregularProxyNoun) any { return &r.IrregularNounID }),
		),
		NonCompositionProxyNouns: newTable[domain.NonCompositionProxyNoun, *domain.NonCompositionProxyNoun](s, "non_composition_proxy_nouns",
			col("word", func(r *domain.NonCompositionProxyNoun) any { return &r.Word }),
			col("normal_noun_id", func(r *domain.NonCompositionProxyNoun) any { return &r.NormalNounID }),
		),
		AdjectiveNouns: newTable[domain.AdjectiveNoun, *domain.AdjectiveNoun](s, "adjective_nouns",
			col("adjective_id", func(r *domain.AdjectiveNoun) any { return &r.AdjectiveID }),
			col("polymorphic_noun_id", func(r *domain.AdjectiveNoun) any { return &r.PolymorphicNounID }),
			col("phrase", func(r *domain.AdjectiveNoun) any { return &r.Phrase }),
		),

		NormalNounReferences: newTable[domain.NormalNounReference, *domain.NormalNounReference](s, "normal_noun_references",
			col("normal_noun_id", func(r *domain.NormalNounReference) any { return &r.NormalNounID }),
			col("reference_id", func(r *domain.NormalNounReference) any { return &r.ReferenceID }),
		),
		IrregularNounReferences: newTable[domain.IrregularNounReference, *domain.IrregularNounReference](s, "irregular_noun_references",
			col("irregular_noun_id", func(r *domain.IrregularNounReference) any { return &r.IrregularNounID }),
			col("reference_id", func(r *domain.IrregularNounReference) any { return &r.ReferenceID }),
		),
		IrregularProxyNounReferences: newTable[domain.IrregularProxyNounReference, *domain.IrregularProxyNounReference](s, "irregular_proxy_noun_references",
			col("irregular_proxy_noun_id", func(r *domain.IrregularProxyNounReference) any { return &r.IrregularProxyNounID }),
			col("reference_id", func(r *domain.IrregularProxyNounReference) any { return &r.ReferenceID }),
		),
		CompositionNounReferences: newTable[domain.CompositionNounReference, *domain.CompositionNounReference](s, "composition_noun_references",
			col("composition_noun_id", func(r *domain.CompositionNounReference) any { return &r.CompositionNounID }),
			col("reference_id", func(r *domain.CompositionNounReference) any { return &r.ReferenceID }),
		),
	}
}
