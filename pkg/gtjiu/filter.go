package gtjiu

import "github.com/aurevix/gtjiu-client/pkg/apiclient"

// Param is one filter entry.
type Param struct {
	Key   string
	Value any
}

// Filter is an ordered list of query parameters for listing endpoints.
// Nil and empty values are skipped when the query is built.
type Filter []Param

// F builds a filter entry.
func F(key string, value any) Param {
	return Param{Key: key, Value: value}
}

// FilterFromMap keeps the order given by keys and reads values from m.
func FilterFromMap(m map[string]string, keys ...string) Filter {
	out := make(Filter, 0, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out = append(out, F(k, v))
		}
	}
	return out
}

func (f Filter) query() apiclient.Query {
	var q apiclient.Query
	for _, p := range f {
		q.Add(p.Key, p.Value)
	}
	return q
}
