package probe

import (
	"github.com/bytedance/sonic"
)

const maxTextLen = 1024

// DecodeBody parses raw as JSON and falls back to opaque text when it does
// not parse. It never fails.
func DecodeBody(raw []byte) *Body {
	b := &Body{Raw: string(raw)}
	if len(raw) == 0 {
		return b
	}
	var v any
	if err := sonic.ConfigStd.Unmarshal(raw, &v); err != nil {
		return b
	}
	b.Value = v
	b.JSON = true
	return b
}

// Items returns the decoded array and true when the body is a JSON array.
func (b *Body) Items() ([]any, bool) {
	if b == nil || !b.JSON {
		return nil, false
	}
	items, ok := b.Value.([]any)
	return items, ok
}

func indentJSON(v any) string {
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return truncate(err.Error())
	}
	return string(out)
}

func truncate(s string) string {
	if len(s) <= maxTextLen {
		return s
	}
	return s[:maxTextLen] + "...(truncated)"
}
