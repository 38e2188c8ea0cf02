package ordering

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"gitlab.com/bhajan-roster.net/internal/domain"
)

var _ IOrderingEngine = (*Engine)(nil)

// Engine orders submissions using an injected catalog and tempo ranking.
type Engine struct {
	catalog domain.Catalog
	tempos  domain.TempoRanking
	locale  language.Tag
}

// NewEngine creates an ordering engine. Singer names are compared with the
// collation rules of locale, ignoring case.
func NewEngine(catalog domain.Catalog, tempos domain.TempoRanking, locale language.Tag) *Engine {
	return &Engine{
		catalog: catalog,
		tempos:  tempos,
		locale:  locale,
	}
}

type sortKey struct {
	sub        *domain.Submission
	deityRank  int
	tempoRank  int
	inCatalog  bool
	singerName string
}

func (e *Engine) Order(subs []*domain.Submission) []domain.OrderedSubmission {
	// collators keep scratch buffers and are not safe for concurrent use
	coll := collate.New(e.locale, collate.IgnoreCase)

	keys := make([]sortKey, 0, len(subs))
	for _, sub := range subs {
		if sub == nil {
			continue
		}
		rank := e.catalog.Rank(sub.Deity)
		keys = append(keys, sortKey{
			sub:        sub,
			deityRank:  rank,
			tempoRank:  e.tempos.Rank(sub.Speed),
			inCatalog:  rank < e.catalog.Len(),
			singerName: strings.TrimSpace(sub.SingerName),
		})
	}

	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.deityRank != b.deityRank {
			return a.deityRank < b.deityRank
		}
		// deities outside the catalog keep their input order
		if !a.inCatalog {
			return false
		}
		if a.tempoRank != b.tempoRank {
			return a.tempoRank < b.tempoRank
		}
		if c := coll.CompareString(a.singerName, b.singerName); c != 0 {
			return c < 0
		}
		if !a.sub.CreatedAt.Equal(b.sub.CreatedAt) {
			return a.sub.CreatedAt.Before(b.sub.CreatedAt)
		}
		return a.sub.ID.String() < b.sub.ID.String()
	})

	out := make([]domain.OrderedSubmission, len(keys))
	for i, k := range keys {
		out[i] = domain.OrderedSubmission{Position: i + 1, Submission: k.sub}
	}
	return out
}
