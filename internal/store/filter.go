package store

import (
	"fmt"
	"net/url"
)

// Filter is a typed query builder for the hosted store's REST interface.
// The store understands equality filters, case-insensitive pattern
// matching and a row limit; nothing else is exposed on purpose.
type Filter struct {
	conds []cond
	limit int
}

type cond struct {
	column string
	op     string
	value  string
}

func Where() *Filter {
	return &Filter{}
}

func (f *Filter) Eq(column string, value any) *Filter {
	f.conds = append(f.conds, cond{column: column, op: "eq", value: fmt.Sprintf("%v", value)})
	return f
}

// ILike matches rows whose column contains pattern, case-insensitively.
func (f *Filter) ILike(column, pattern string) *Filter {
	f.conds = append(f.conds, cond{column: column, op: "ilike", value: "*" + pattern + "*"})
	return f
}

func (f *Filter) Limit(n int) *Filter {
	f.limit = n
	return f
}

// Encode renders the filter as REST query parameters, e.g.
// "status=eq.active&title=ilike.*solar*&limit=100".
func (f *Filter) Encode() string {
	values := url.Values{}
	for _, c := range f.conds {
		values.Add(c.column, c.op+"."+c.value)
	}
	if f.limit > 0 {
		values.Set("limit", fmt.Sprintf("%d", f.limit))
	}
	return values.Encode()
}
