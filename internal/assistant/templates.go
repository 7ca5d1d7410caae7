package assistant

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ResponseKind names the tier a resolved response came from.
type ResponseKind string

const (
	KindShowcase ResponseKind = "showcase"
	KindCategory ResponseKind = "category"
	KindGeneric  ResponseKind = "generic"
)

// Response is what the resolver hands the chat surface. Content may still
// carry {{token}} placeholders; substitution is a separate step via Adapt.
type Response struct {
	Kind      ResponseKind `json:"kind"`
	ID        string       `json:"id,omitempty"`
	Category  string       `json:"category,omitempty"`
	Content   string       `json:"content"`
	ToolChips []string     `json:"tool_chips,omitempty"`
	FollowUps []string     `json:"follow_ups,omitempty"`
}

// CategoryTemplate answers queries that name (or hint at) one of the
// workbook's topic areas.
type CategoryTemplate struct {
	CategoryID string   `json:"category_id"`
	Keywords   []string `json:"keywords,omitempty"`
	Content    string   `json:"content"`
	ToolChips  []string `json:"tool_chips"`
	FollowUps  []string `json:"follow_ups"`
}

// GenericTemplate is a fallback answer used when nothing else matches.
type GenericTemplate struct {
	ID        string   `json:"id"`
	Content   string   `json:"content"`
	ToolChips []string `json:"tool_chips"`
	FollowUps []string `json:"follow_ups"`
}

// ShowcaseTemplate is a fully scripted set-piece answer, selected by id from
// the demo UI rather than typed.
type ShowcaseTemplate struct {
	ID        string   `json:"id"`
	Trigger   string   `json:"trigger"`
	Content   string   `json:"content"`
	ToolChips []string `json:"tool_chips,omitempty"`
	FollowUps []string `json:"follow_ups"`
}

// Store is the read-only template source consulted by the resolver. Built
// once at startup and never mutated afterwards.
type Store struct {
	categories    map[string]CategoryTemplate
	categoryOrder []string
	generics      []GenericTemplate
	showcases     map[string]ShowcaseTemplate
	showcaseOrder []string
}

const (
	genericCount       = 5
	showcaseCount      = 10
	minCategoryContent = 80
	minShowcaseContent = 100
	showcaseFollowUps  = 3
	companyPlaceholder = "{{company}}"
)

var placeholderPattern = regexp.MustCompile(`\{\{\w+\}\}`)

func NewStore(categories []CategoryTemplate, generics []GenericTemplate, showcases []ShowcaseTemplate) (*Store, error) {
	s := &Store{
		categories: make(map[string]CategoryTemplate, len(categories)),
		generics:   append([]GenericTemplate(nil), generics...),
		showcases:  make(map[string]ShowcaseTemplate, len(showcases)),
	}
	for _, tpl := range categories {
		if err := validateCategory(tpl); err != nil {
			return nil, err
		}
		if _, exists := s.categories[tpl.CategoryID]; exists {
			return nil, fmt.Errorf("duplicate category id %q", tpl.CategoryID)
		}
		s.categories[tpl.CategoryID] = tpl
		s.categoryOrder = append(s.categoryOrder, tpl.CategoryID)
	}
	if len(generics) != genericCount {
		return nil, fmt.Errorf("expected exactly %d generic templates, got %d", genericCount, len(generics))
	}
	for _, tpl := range generics {
		if err := validateGeneric(tpl); err != nil {
			return nil, err
		}
	}
	if len(showcases) != showcaseCount {
		return nil, fmt.Errorf("expected exactly %d showcase templates, got %d", showcaseCount, len(showcases))
	}
	for _, tpl := range showcases {
		if err := validateShowcase(tpl); err != nil {
			return nil, err
		}
		if _, exists := s.showcases[tpl.ID]; exists {
			return nil, fmt.Errorf("duplicate showcase id %q", tpl.ID)
		}
		s.showcases[tpl.ID] = tpl
		s.showcaseOrder = append(s.showcaseOrder, tpl.ID)
	}
	return s, nil
}

// BuiltinStore loads the demo's canned content. The tables are fixed; a
// failure here means the compiled-in content is malformed.
func BuiltinStore() (*Store, error) {
	return NewStore(builtinCategories(), builtinGenerics(), builtinShowcases())
}

func (s *Store) Category(id string) (CategoryTemplate, bool) {
	tpl, ok := s.categories[id]
	return tpl, ok
}

func (s *Store) CategoryIDs() []string {
	return append([]string(nil), s.categoryOrder...)
}

func (s *Store) Generic(index int) (GenericTemplate, bool) {
	if index < 0 || index >= len(s.generics) {
		return GenericTemplate{}, false
	}
	return s.generics[index], true
}

func (s *Store) GenericCount() int {
	return len(s.generics)
}

func (s *Store) Showcase(id string) (ShowcaseTemplate, bool) {
	tpl, ok := s.showcases[id]
	return tpl, ok
}

func (s *Store) ShowcaseIDs() []string {
	return append([]string(nil), s.showcaseOrder...)
}

func validateCategory(tpl CategoryTemplate) error {
	if strings.TrimSpace(tpl.CategoryID) == "" {
		return errors.New("category template requires an id")
	}
	if len(tpl.Content) <= minCategoryContent {
		return fmt.Errorf("category %q content too short", tpl.CategoryID)
	}
	if !strings.Contains(tpl.Content, companyPlaceholder) {
		return fmt.Errorf("category %q content missing %s", tpl.CategoryID, companyPlaceholder)
	}
	if err := validateSuggestions(tpl.ToolChips, tpl.FollowUps, true); err != nil {
		return fmt.Errorf("category %q: %w", tpl.CategoryID, err)
	}
	return nil
}

func validateGeneric(tpl GenericTemplate) error {
	if strings.TrimSpace(tpl.ID) == "" {
		return errors.New("generic template requires an id")
	}
	if len(tpl.Content) <= minCategoryContent {
		return fmt.Errorf("generic %q content too short", tpl.ID)
	}
	if !strings.Contains(tpl.Content, companyPlaceholder) {
		return fmt.Errorf("generic %q content missing %s", tpl.ID, companyPlaceholder)
	}
	if err := validateSuggestions(tpl.ToolChips, tpl.FollowUps, true); err != nil {
		return fmt.Errorf("generic %q: %w", tpl.ID, err)
	}
	return nil
}

func validateShowcase(tpl ShowcaseTemplate) error {
	if strings.TrimSpace(tpl.ID) == "" {
		return errors.New("showcase template requires an id")
	}
	if len(tpl.Content) < minShowcaseContent {
		return fmt.Errorf("showcase %q content too short", tpl.ID)
	}
	if !placeholderPattern.MatchString(tpl.Content) {
		return fmt.Errorf("showcase %q content has no placeholder", tpl.ID)
	}
	if len(tpl.FollowUps) != showcaseFollowUps {
		return fmt.Errorf("showcase %q requires exactly %d follow-ups", tpl.ID, showcaseFollowUps)
	}
	// Tool chips may be empty for showcases, but never blank entries.
	for _, chip := range tpl.ToolChips {
		if strings.TrimSpace(chip) == "" {
			return fmt.Errorf("showcase %q has a blank tool chip", tpl.ID)
		}
	}
	for _, follow := range tpl.FollowUps {
		if strings.TrimSpace(follow) == "" {
			return fmt.Errorf("showcase %q has a blank follow-up", tpl.ID)
		}
	}
	return nil
}

func validateSuggestions(chips, followUps []string, chipsRequired bool) error {
	if chipsRequired && len(chips) == 0 {
		return errors.New("tool chips are required")
	}
	for _, chip := range chips {
		if strings.TrimSpace(chip) == "" {
			return errors.New("blank tool chip")
		}
	}
	if len(followUps) == 0 {
		return errors.New("follow-ups are required")
	}
	for _, follow := range followUps {
		if strings.TrimSpace(follow) == "" {
			return errors.New("blank follow-up")
		}
	}
	return nil
}
