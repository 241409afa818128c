package domain

// Rule is a named grammatical transformation.
type Rule struct {
	Record
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Priority    int    `json:"priority" validate:"gte=0"`
}

// Add appends a value as a step of a rule.
type Add struct {
	Record
	RuleID   int64  `json:"rule_id" validate:"required"`
	Value    string `json:"value" validate:"required,max=255"`
	Position int    `json:"position" validate:"gte=0"`
}

// Replace substitutes text as a step of a rule.
type Replace struct {
	Record
	RuleID      int64  `json:"rule_id" validate:"required"`
	Search      string `json:"search" validate:"required,max=255"`
	Replacement string `json:"replacement" validate:"max=255"`
}

// Result is an example input/output pair for a rule.
type Result struct {
	Record
	RuleID int64  `json:"rule_id" validate:"required"`
	Input  string `json:"input" validate:"required,max=255"`
	Output string `json:"output" validate:"required,max=255"`
}

// RuleReference links a rule to a reference.
type RuleReference struct {
	Record
	RuleID      int64 `json:"rule_id" validate:"required"`
	ReferenceID int64 `json:"reference_id" validate:"required"`
}
