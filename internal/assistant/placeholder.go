package assistant

import "strings"

// Adapt substitutes {{key}} markers in the response content for every key
// present in ctx. Keys absent from ctx stay as literal text. The source
// record is never mutated; the result is a distinct record with its own
// content and suggestion slices.
//
// Substitution is a single pass over the content, so values that happen to
// contain marker syntax are not re-expanded and the order keys are applied
// in cannot matter.
func Adapt(resp *Response, ctx map[string]string) *Response {
	if resp == nil {
		return nil
	}
	out := &Response{
		Kind:      resp.Kind,
		ID:        resp.ID,
		Category:  resp.Category,
		Content:   substitute(resp.Content, ctx),
		ToolChips: append([]string(nil), resp.ToolChips...),
		FollowUps: append([]string(nil), resp.FollowUps...),
	}
	return out
}

func substitute(content string, ctx map[string]string) string {
	if len(ctx) == 0 {
		return content
	}
	return placeholderPattern.ReplaceAllStringFunc(content, func(token string) string {
		key := strings.TrimSuffix(strings.TrimPrefix(token, "{{"), "}}")
		if value, ok := ctx[key]; ok {
			return value
		}
		return token
	})
}
