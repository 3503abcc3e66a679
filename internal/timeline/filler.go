package timeline

// genericEvents are season-agnostic Regency happenings used to pad a
// timeline beyond what the story paragraphs yield.
var genericEvents = []string{
	"A letter arrives with unexpected news",
	"An important visitor calls at the house",
	"A misunderstanding leads to social awkwardness",
	"Rumors circulate about a new arrival in the neighborhood",
	"A chance encounter reveals new information",
	"A dinner party with distinguished guests",
	"A private conversation overheard by accident",
	"An invitation arrives for an upcoming social event",
	"A carriage ride with surprising revelations",
	"A walk in the grounds leads to an important decision",
}

// AdditionalEvents builds a pool of filler event descriptions (generic
// happenings, two per known character and two per seasonal activity)
// and samples num of them without replacement. When the pool is smaller
// than num, every entry is returned.
func (g *Generator) AdditionalEvents(season Season, num int) []string {
	pool := make([]string, 0, len(genericEvents)+2*len(g.characters)+2*len(season.Activities))
	pool = append(pool, genericEvents...)

	for _, c := range g.characters {
		if c.Name == "" {
			continue
		}
		pool = append(pool,
			c.Name+" receives an unexpected invitation",
			"A revealing conversation with "+c.Name,
		)
	}
	for _, activity := range season.Activities {
		pool = append(pool,
			"Preparations begin for the "+activity,
			"Attendance at the "+activity+" leads to new acquaintances",
		)
	}

	if num > len(pool) {
		num = len(pool)
	}
	if num <= 0 {
		return nil
	}
	perm := g.rng.Perm(len(pool))
	out := make([]string, num)
	for i := range out {
		out[i] = pool[perm[i]]
	}
	return out
}
