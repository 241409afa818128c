package domain

// Adres is a street address.
type Adres struct {
	Record
	Straat     string `json:"straat" validate:"required,max=255"`
	Huisnummer string `json:"huisnummer" validate:"required,max=16"`
	Postcode   string `json:"postcode" validate:"required,max=16"`
	Plaats     string `json:"plaats" validate:"required,max=255"`
}

// Afbeelding is an image reference.
type Afbeelding struct {
	Record
	URL          string `json:"url" validate:"required,url"`
	Omschrijving string `json:"omschrijving"`
}

// Locatie is a named point tied to an address.
type Locatie struct {
	Record
	Naam      string  `json:"naam" validate:"required,max=255"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	AdresID   int64   `json:"adres_id" validate:"required" doc:"References adres.id"`
}

// Politiebureau is a police station. Listed with pagination.
type Politiebureau struct {
	Record
	Naam           string `json:"naam" validate:"required,max=255"`
	Omschrijving   string `json:"omschrijving"`
	Telefoonnummer string `json:"telefoonnummer" validate:"max=32"`
	Email          string `json:"email" validate:"omitempty,email"`
}

// PolitiebureausLocatie links a police station to a location.
type PolitiebureausLocatie struct {
	Record
	PolitiebureauID int64 `json:"politiebureau_id" validate:"required"`
	LocatieID       int64 `json:"locatie_id" validate:"required"`
}
