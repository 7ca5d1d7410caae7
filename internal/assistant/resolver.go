package assistant

import "strings"

// Resolver selects a canned response for a query. Matching runs in tier
// order: exact showcase id, category (exact id, then keyword scan), then the
// round-robin generic fallback. Resolve never returns nil; the fallback tier
// always produces something usable.
//
// The round-robin cursor is owned per instance so independent resolvers
// (tests, parallel demos) do not interfere.
type Resolver struct {
	store  *Store
	cursor int
}

func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

func (r *Resolver) Resolve(query string) *Response {
	if resp := r.ShowcaseResponse(query); resp != nil {
		return resp
	}
	if query != "" {
		if resp := r.CategoryResponse(query); resp != nil {
			return resp
		}
		if id := r.matchCategoryKeyword(query); id != "" {
			if resp := r.CategoryResponse(id); resp != nil {
				return resp
			}
		}
	}
	return r.nextGeneric()
}

// ShowcaseResponse returns the showcase record for an exact id, or nil.
// Showcase entries are dispatched by UI id, so matching is case-sensitive.
func (r *Resolver) ShowcaseResponse(id string) *Response {
	tpl, ok := r.store.Showcase(id)
	if !ok {
		return nil
	}
	return &Response{
		Kind:      KindShowcase,
		ID:        tpl.ID,
		Content:   tpl.Content,
		ToolChips: append([]string(nil), tpl.ToolChips...),
		FollowUps: append([]string(nil), tpl.FollowUps...),
	}
}

// CategoryResponse returns the category record for an exact id, or nil.
func (r *Resolver) CategoryResponse(id string) *Response {
	tpl, ok := r.store.Category(id)
	if !ok {
		return nil
	}
	return &Response{
		Kind:      KindCategory,
		ID:        tpl.CategoryID,
		Category:  tpl.CategoryID,
		Content:   tpl.Content,
		ToolChips: append([]string(nil), tpl.ToolChips...),
		FollowUps: append([]string(nil), tpl.FollowUps...),
	}
}

// matchCategoryKeyword scans free text for category keywords. This is an
// enhancement over exact id dispatch; id equality stays the contract.
func (r *Resolver) matchCategoryKeyword(query string) string {
	lowered := strings.ToLower(query)
	for _, id := range r.store.CategoryIDs() {
		tpl, ok := r.store.Category(id)
		if !ok {
			continue
		}
		for _, keyword := range tpl.Keywords {
			if keyword != "" && strings.Contains(lowered, keyword) {
				return id
			}
		}
	}
	return ""
}

func (r *Resolver) nextGeneric() *Response {
	tpl, ok := r.store.Generic(r.cursor)
	if !ok {
		return nil
	}
	r.cursor = (r.cursor + 1) % r.store.GenericCount()
	return &Response{
		Kind:      KindGeneric,
		ID:        tpl.ID,
		Content:   tpl.Content,
		ToolChips: append([]string(nil), tpl.ToolChips...),
		FollowUps: append([]string(nil), tpl.FollowUps...),
	}
}
