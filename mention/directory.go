package mention

import (
	"context"
	"strings"

	"github.com/sahilm/fuzzy"
)

const defaultDirectoryLimit = 20

// Directory is an in-memory Provider that ranks members by fuzzy match on
// display name and user name.
type Directory struct {
	members []Candidate
	limit   int
}

// NewDirectory returns a Directory over members. limit caps the number of
// results; zero or less means 20.
func NewDirectory(members []Candidate, limit int) *Directory {
	if limit <= 0 {
		limit = defaultDirectoryLimit
	}
	return &Directory{members: append([]Candidate(nil), members...), limit: limit}
}

type directorySource []Candidate

func (s directorySource) String(i int) string { return s[i].DisplayName + " " + s[i].Name }
func (s directorySource) Len() int            { return len(s) }

// QueryMembers returns the members matching q.SearchKey, best match first.
// An empty key lists members in directory order.
func (d *Directory) QueryMembers(ctx context.Context, q Query) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := strings.TrimSpace(q.SearchKey)
	if key == "" {
		n := min(len(d.members), d.limit)
		return append([]Candidate(nil), d.members[:n]...), nil
	}

	matches := fuzzy.FindFrom(key, directorySource(d.members))
	out := make([]Candidate, 0, min(len(matches), d.limit))
	for _, m := range matches {
		if len(out) == d.limit {
			break
		}
		out = append(out, d.members[m.Index])
	}
	return out, nil
}
