// Package service holds the operations behind the HTTP API.
package service

import (
	"log/slog"

	"github.com/grammatica/grammatica-server/internal/domain"
	"github.com/grammatica/grammatica-server/internal/store/sqldb"
	"github.com/grammatica/grammatica-server/internal/validation"
)

// OpenAPI tags.
const (
	TagLibrary   = "Books"
	TagLocations = "Locations"
	TagRules     = "Rules"
	TagNouns     = "Nouns"
)

// Default pages reported by the paged resources when no page is given.
const (
	BookDefaultPage          = 0
	PolitiebureauDefaultPage = 1
)

// Catalog is every resource the API serves.
type Catalog struct {
	Books   *Resource[domain.Book, *domain.Book]
	Reviews *Resource[domain.Review, *domain.Review]

	Adressen               *Resource[domain.Adres, *domain.Adres]
	Afbeeldingen           *Resource[domain.Afbeelding, *domain.Afbeelding]
	Locaties               *Resource[domain.Locatie, *domain.Locatie]
	Politiebureaus         *Resource[domain.Politiebureau, *domain.Politiebureau]
	PolitiebureausLocaties *Resource[domain.PolitiebureausLocatie, *domain.PolitiebureausLocatie]

	Rules          *Resource[domain.Rule, *domain.Rule]
	Adds           *Resource[domain.Add, *domain.Add]
	Replaces       *Resource[domain.Replace, *domain.Replace]
	Results        *Resource[domain.Result, *domain.Result]
	References     *Resource[domain.Reference, *domain.Reference]
	RuleReferences *Resource[domain.RuleReference, *domain.RuleReference]

	Adjectives               *Resource[domain.Adjective, *domain.Adjective]
	NormalNouns              *Resource[domain.NormalNoun, *domain.NormalNoun]
	IrregularNouns           *Resource[domain.IrregularNoun, *domain.IrregularNoun]
	CompositionNouns         *Resource[domain.CompositionNoun, *domain.CompositionNoun]
	PolymorphicNouns         *Resource[domain.PolymorphicNoun, *domain.PolymorphicNoun]
	IrregularProxyNouns      *Resource[domain.IrregularProxyNoun, *domain.IrregularProxyNoun]
	NonCompositionProxyNouns *Resource[domain.NonCompositionProxyNoun, *domain.NonCompositionProxyNoun]
	AdjectiveNouns           *Resource[domain.AdjectiveNoun, *domain.AdjectiveNoun]

	NormalNounReferences         *Resource[domain.NormalNounReference, *domain.NormalNounReference]
	IrregularNounReferences      *Resource[domain.IrregularNounReference, *domain.IrregularNounReference]
	IrregularProxyNounReferences *Resource[domain.IrregularProxyNounReference, *domain.IrregularProxyNounReference]
	CompositionNounReferences    *Resource[domain.CompositionNounReference, *domain.CompositionNounReference]
}

// CatalogOptions configures NewCatalog.
type CatalogOptions struct {
	PageSize int
	Recorder OperationRecorder
	Logger   *slog.Logger
}

// NewCatalog wires every resource to its table.
//
//nolint:funlen // one entry per resource
func NewCatalog(db *sqldb.Store, v *validation.Validator, opts CatalogOptions) *Catalog {
	if opts.PageSize <= 0 {
		opts.PageSize = 2
	}
	common := []ResourceOption{WithRecorder(opts.Recorder), WithLogger(opts.Logger)}
	paged := func(defaultPage int) []ResourceOption {
		return append([]ResourceOption{WithPaging(Paging{PageSize: opts.PageSize, DefaultPage: defaultPage})}, common...)
	}

	return &Catalog{
		Books: NewResource[domain.Book](
			Descriptor{Name: "Book", Plural: "Books", Path: "/api/books", Tag: TagLibrary},
			db.Books, v, paged(BookDefaultPage)...),
		Reviews: NewResource[domain.Review](
			Descriptor{Name: "Review", Plural: "Reviews", Path: "/api/reviews", Tag: TagLibrary},
			db.Reviews, v, common...),

		Adressen: NewResource[domain.Adres](
			Descriptor{Name: "Adres", Plural: "Adres", Path: "/api/v1/adres", Tag: TagLocations},
			db.Adressen, v, common...),
		Afbeeldingen: NewResource[domain.Afbeelding](
			Descriptor{Name: "Afbeelding", Plural: "Afbeeldings", Path: "/api/v1/afbeeldings", Tag: TagLocations},
			db.Afbeeldingen, v, common...),
		Locaties: NewResource[domain.Locatie](
			Descriptor{Name: "Locatie", Plural: "Locaties", Path: "/api/v1/locaties", Tag: TagLocations},
			db.Locaties, v, common...),
		Politiebureaus: NewResource[domain.Politiebureau](
			Descriptor{Name: "Politiebureau", Plural: "Politiebureaus", Path: "/api/v1/politiebureaus", Tag: TagLocations},
			db.Politiebureaus, v, paged(PolitiebureauDefaultPage)...),
		PolitiebureausLocaties: NewResource[domain.PolitiebureausLocatie](
			Descriptor{Name: "Politiebureaus Locatie", Plural: "Politiebureaus Locaties", Path: "/api/v1/politiebureaus_locaties", Tag: TagLocations},
			db.PolitiebureausLocaties, v, common...),

		Rules: NewResource[domain.Rule](
			Descriptor{Name: "Rule", Plural: "Rules", Path: "/api/rules", Tag: TagRules},
			db.Rules, v, common...),
		Adds: NewResource[domain.Add](
			Descriptor{Name: "Add", Plural: "Adds", Path: "/api/adds", Tag: TagRules},
			db.Adds, v, common...),
		Replaces: NewResource[domain.Replace](
			Descriptor{Name: "Replace", Plural: "Replaces", Path: "/api/replaces", Tag: TagRules},
			db.Replaces, v, common...),
		Results: NewResource[domain.Result](
			Descriptor{Name: "Result", Plural: "Results", Path: "/api/results", Tag: TagRules},
			db.Results, v, common...),
		References: NewResource[domain.Reference](
			Descriptor{Name: "Reference", Plural: "References", Path: "/api/references", Tag: TagRules},
			db.References, v, common...),
		RuleReferences: NewResource[domain.RuleReference](
			Descriptor{Name: "Rule Reference", Plural: "Rule References", Path: "/api/ruleReferences", Tag: TagRules},
			db.RuleReferences, v, common...),

		Adjectives: NewResource[domain.Adjective](
			Descriptor{Name: "Adjective", Plural: "Adjectives", Path: "/api/adjectives", Tag: TagNouns},
			db.Adjectives, v, common...),
		NormalNouns: NewResource[domain.NormalNoun](
			Descriptor{Name: "Normal Noun", Plural: "Normal Nouns", Path: "/api/normalNouns", Tag: TagNouns},
			db.NormalNouns, v, common...),
		IrregularNouns: NewResource[domain.IrregularNoun](
			Descriptor{Name: "Irregular Noun", Plural: "Irregular Nouns", Path: "/api/irregularNouns", Tag: TagNouns},
			db.IrregularNouns, v, common...),
		CompositionNouns: NewResource[domain.CompositionNoun](
			Descriptor{Name: "Composition Noun", Plural: "Composition Nouns", Path: "/api/compositionNouns", Tag: TagNouns},
			db.CompositionNouns, v, common...),
		PolymorphicNouns: NewResource[domain.PolymorphicNoun](
			Descriptor{Name: "Polymorphic Noun", Plural: "Polymorphic Nouns", Path: "/api/polymorphicNouns", Tag: TagNouns},
			db.PolymorphicNouns, v, common...),
		IrregularProxyNouns: NewResource[domain.IrregularProxyNoun](
			Descriptor{Name: "Irregular Proxy Noun", Plural: "Irregular Proxy Nouns", Path: "/api/irregularProxyNouns", Tag: TagNouns},
			db.IrregularProxyNouns, v, common...),
		NonCompositionProxyNouns: NewResource[domain.NonCompositionProxyNoun](
			Descriptor{Name: "Non Composition Proxy Noun", Plural: "Non Composition Proxy Nouns", Path: "/api/nonCompositionProxyNouns", Tag: TagNouns},
			db.NonCompositionProxyNouns, v, common...),
		AdjectiveNouns: NewResource[domain.AdjectiveNoun](
			Descriptor{Name: "Adjective Noun", Plural: "Adjective Nouns", Path: "/api/adjectiveNouns", Tag: TagNouns},
			db.AdjectiveNouns, v, common...),

		NormalNounReferences: NewResource[domain.NormalNounReference](
			Descriptor{Name: "Normal Noun Reference", Plural: "Normal Noun References", Path: "/api/normalNounReferences", Tag: TagNouns},
			db.NormalNounReferences, v, common...),
		IrregularNounReferences: NewResource[domain.IrregularNounReference](
			Descriptor{Name: "Irregular Noun Reference", Plural: "Irregular Noun References", Path: "/api/irregularNounReferences", Tag: TagNouns},
			db.IrregularNounReferences, v, common...),
		IrregularProxyNounReferences: NewResource[domain.IrregularProxyNounReference](
			Descriptor{Name: "Irregular Proxy Noun Reference", Plural: "Irregular Proxy Noun References", Path: "/api/irregularProxyNounReferences", Tag: TagNouns},
			db.IrregularProxyNounReferences, v, common...),
		CompositionNounReferences: NewResource[domain.CompositionNounReference](
			Descriptor{Name: "Composition Noun Reference", Plural: "Composition Noun References", Path: "/api/compositionNounReferences", Tag: TagNouns},
			db.CompositionNounReferences, v, common...),
	}
}
