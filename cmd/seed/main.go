// Package main seeds the database with demo books, police stations and
// Dutch grammar data, plus a login account.
//
// It accepts the same flags and environment variables as the API server.
// The account is taken from SEED_USER_EMAIL and SEED_USER_PASSWORD.
//
// Usage:
//
//	go run ./cmd/seed --db-path /tmp/grammatica.db
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/samber/do/v2"

	"github.com/grammatica/grammatica-server/internal/di"
	"github.com/grammatica/grammatica-server/internal/di/providers"
	"github.com/grammatica/grammatica-server/internal/domain"
	domainerrors "github.com/grammatica/grammatica-server/internal/errors"
	"github.com/grammatica/grammatica-server/internal/logger"
	"github.com/grammatica/grammatica-server/internal/service"
	"github.com/grammatica/grammatica-server/internal/store"
)

const (
	defaultEmail    = "docent@grammatica.local"
	defaultPassword = "grammatica"
)

func main() {
	injector := di.NewContainer(os.Args[1:])

	db, err := do.Invoke[*providers.StoreHandle](injector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	log := do.MustInvoke[*logger.Logger](injector)
	authService := do.MustInvoke[*service.AuthService](injector)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	err = run(ctx, db, authService, log)
	cancel()

	if shutdownErr := injector.Shutdown(); shutdownErr != nil {
		log.Error("Shutdown error", "error", shutdownErr)
	}
	if err != nil {
		log.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, db *providers.StoreHandle, authService *service.AuthService, log *logger.Logger) error {
	if err := seedUser(ctx, authService, log); err != nil {
		return err
	}

	existing, err := db.Books.Count(ctx, store.Query{})
	if err != nil {
		return err
	}
	if existing > 0 {
		log.Info("Database already contains data, skipping", "books", existing)
		return nil
	}

	steps := []struct {
		name string
		fn   func(context.Context, *providers.StoreHandle) error
	}{
		{"books", seedBooks},
		{"locations", seedLocations},
		{"grammar", seedGrammar},
	}
	for _, step := range steps {
		if err := step.fn(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		log.Info("Seeded", "group", step.name)
	}
	return nil
}

func seedUser(ctx context.Context, authService *service.AuthService, log *logger.Logger) error {
	email := envOr("SEED_USER_EMAIL", defaultEmail)

	user, err := authService.CreateUser(ctx, service.CreateUserRequest{
		Email:    email,
		Name:     "Docent",
		Password: envOr("SEED_USER_PASSWORD", defaultPassword),
	})
	if errors.Is(err, domainerrors.ErrAlreadyExists) {
		log.Info("User already exists", "email", email)
		return nil
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	log.Info("Created user", "id", user.ID, "email", user.Email)
	return nil
}

func seedBooks(ctx context.Context, db *providers.StoreHandle) error {
	books := []*domain.Book{
		{Title: "Max Havelaar", Author: "Multatuli", ISBN: "9789028242041", PublishedYear: 1860},
		{Title: "De avonden", Author: "Gerard Reve", ISBN: "9789023475444", PublishedYear: 1947},
		{Title: "Het achterhuis", Author: "Anne Frank", ISBN: "9789044628546", PublishedYear: 1947},
		{Title: "De aanslag", Author: "Harry Mulisch", ISBN: "9789023468927", PublishedYear: 1982},
		{Title: "Turks fruit", Author: "Jan Wolkers", ISBN: "9789029091853", PublishedYear: 1969},
	}
	for _, b := range books {
		if err := db.Books.Create(ctx, b); err != nil {
			return err
		}
	}

	reviews := []*domain.Review{
		{BookID: books[0].ID, Reviewer: "Sanne", Rating: 5, Body: "Scherp en nog steeds actueel."},
		{BookID: books[0].ID, Reviewer: "Pieter", Rating: 4},
		{BookID: books[1].ID, Reviewer: "Anouk", Rating: 3, Body: "Traag, maar dat is de bedoeling."},
		{BookID: books[3].ID, Reviewer: "Joris", Rating: 5},
	}
	for _, r := range reviews {
		if err := db.Reviews.Create(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func seedLocations(ctx context.Context, db *providers.StoreHandle) error {
	stations := []struct {
		bureau  domain.Politiebureau
		adres   domain.Adres
		locatie domain.Locatie
	}{
		{
			bureau:  domain.Politiebureau{Naam: "Bureau Warmoesstraat", Telefoonnummer: "0900-8844"},
			adres:   domain.Adres{Straat: "Lange Niezel", Huisnummer: "10", Postcode: "1012 GS", Plaats: "Amsterdam"},
			locatie: domain.Locatie{Latitude: 52.3745, Longitude: 4.8986},
		},
		{
			bureau:  domain.Politiebureau{Naam: "Bureau Paardenveld", Telefoonnummer: "0900-8844"},
			adres:   domain.Adres{Straat: "Paardenveld", Huisnummer: "5", Postcode: "3521 AA", Plaats: "Utrecht"},
			locatie: domain.Locatie{Latitude: 52.0936, Longitude: 5.1092},
		},
		{
			bureau:  domain.Politiebureau{Naam: "Bureau Groningen Centrum", Omschrijving: "Hoofdbureau"},
			adres:   domain.Adres{Straat: "Rademarkt", Huisnummer: "12", Postcode: "9711 CW", Plaats: "Groningen"},
			locatie: domain.Locatie{Latitude: 53.2159, Longitude: 6.5712},
		},
	}

	for i := range stations {
		s := &stations[i]
		if err := db.Adressen.Create(ctx, &s.adres); err != nil {
			return err
		}
		loc := &s.locatie
		loc.Naam = s.bureau.Naam
		loc.AdresID = s.adres.ID
		if err := db.Locaties.Create(ctx, loc); err != nil {
			return err
		}
		if err := db.Politiebureaus.Create(ctx, &s.bureau); err != nil {
			return err
		}
		link := &domain.PolitiebureausLocatie{PolitiebureauID: s.bureau.ID, LocatieID: loc.ID}
		if err := db.PolitiebureausLocaties.Create(ctx, link); err != nil {
			return err
		}
	}

	return db.Afbeeldingen.Create(ctx, &domain.Afbeelding{
		URL:          "https://www.politie.nl/images/logo.png",
		Omschrijving: "Logo",
	})
}

//nolint:funlen // one block per table
func seedGrammar(ctx context.Context, db *providers.StoreHandle) error {
	ref := &domain.Reference{Word: "woordenlijst", Source: "https://woordenlijst.org"}
	if err := db.References.Create(ctx, ref); err != nil {
		return err
	}

	rule := &domain.Rule{Name: "meervoud-en", Description: "Meervoud met -en", Priority: 1}
	if err := db.Rules.Create(ctx, rule); err != nil {
		return err
	}
	if err := db.Adds.Create(ctx, &domain.Add{RuleID: rule.ID, Value: "en", Position: 0}); err != nil {
		return err
	}
	if err := db.Replaces.Create(ctx, &domain.Replace{RuleID: rule.ID, Search: "aa", Replacement: "a"}); err != nil {
		return err
	}
	if err := db.Results.Create(ctx, &domain.Result{RuleID: rule.ID, Input: "maan", Output: "manen"}); err != nil {
		return err
	}
	if err := db.RuleReferences.Create(ctx, &domain.RuleReference{RuleID: rule.ID, ReferenceID: ref.ID}); err != nil {
		return err
	}

	tafel := &domain.NormalNoun{Singular: "tafel", Plural: "tafels", Article: domain.ArticleDe, Diminutive: "tafeltje"}
	if err := db.NormalNouns.Create(ctx, tafel); err != nil {
		return err
	}
	stad := &domain.IrregularNoun{Singular: "stad", Plural: "steden", Article: domain.ArticleDe}
	if err := db.IrregularNouns.Create(ctx, stad); err != nil {
		return err
	}
	fiets := &domain.CompositionNoun{Word: "fietspad", FirstPart: "fiets", SecondPart: "pad", Article: domain.ArticleHet}
	if err := db.CompositionNouns.Create(ctx, fiets); err != nil {
		return err
	}
	groot := &domain.Adjective{Word: "groot", Comparative: "groter", Superlative: "grootst"}
	if err := db.Adjectives.Create(ctx, groot); err != nil {
		return err
	}

	poly := &domain.PolymorphicNoun{Word: "tafel", NounableType: domain.NounableNormal, NounableID: tafel.ID}
	if err := db.PolymorphicNouns.Create(ctx, poly); err != nil {
		return err
	}
	if err := db.AdjectiveNouns.Create(ctx, &domain.AdjectiveNoun{
		AdjectiveID: groot.ID, PolymorphicNounID: poly.ID, Phrase: "de grote tafel",
	}); err != nil {
		return err
	}

	proxy := &domain.IrregularProxyNoun{Word: "steden", IrregularNounID: stad.ID}
	if err := db.IrregularProxyNouns.Create(ctx, proxy); err != nil {
		return err
	}
	if err := db.NonCompositionProxyNouns.Create(ctx, &domain.NonCompositionProxyNoun{
		Word: "tafels", NormalNounID: tafel.ID,
	}); err != nil {
		return err
	}

	links := []error{
		db.NormalNounReferences.Create(ctx, &domain.NormalNounReference{NormalNounID: tafel.ID, ReferenceID: ref.ID}),
		db.IrregularNounReferences.Create(ctx, &domain.IrregularNounReference{IrregularNounID: stad.ID, ReferenceID: ref.ID}),
		db.IrregularProxyNounReferences.Create(ctx, &domain.IrregularProxyNounReference{IrregularProxyNounID: proxy.ID, ReferenceID: ref.ID}),
		db.CompositionNounReferences.Create(ctx, &domain.CompositionNounReference{CompositionNounID: fiets.ID, ReferenceID: ref.ID}),
	}
	return errors.Join(links...)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
