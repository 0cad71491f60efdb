package content

// Store is an immutable, validated content set. Accessors hand out copies.
type Store struct {
	episodes []Episode
	credits  []Credit
	ladders  []Ladder
	cards    []Card
	home     []HomeElement
	review   Review
	memos    Memos
}

func cloneAll[T any](in []T, clone func(T) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

func identity[T any](v T) T { return v }

func find[T any](in []T, id string, idOf func(T) string, clone func(T) T) (T, bool) {
	for _, v := range in {
		if idOf(v) == id {
			return clone(v), true
		}
	}
	var zero T
	return zero, false
}

// Episodes returns the archive in authored order.
func (s *Store) Episodes() []Episode { return cloneAll(s.episodes, Episode.clone) }

// Episode looks up one episode by id.
func (s *Store) Episode(id string) (Episode, bool) {
	return find(s.episodes, id, func(e Episode) string { return e.ID }, Episode.clone)
}

func (s *Store) Credits() []Credit { return cloneAll(s.credits, Credit.clone) }

func (s *Store) Credit(id string) (Credit, bool) {
	return find(s.credits, id, func(c Credit) string { return c.ID }, Credit.clone)
}

func (s *Store) Ladders() []Ladder { return cloneAll(s.ladders, Ladder.clone) }

func (s *Store) Ladder(id string) (Ladder, bool) {
	return find(s.ladders, id, func(l Ladder) string { return l.ID }, Ladder.clone)
}

func (s *Store) Cards() []Card { return cloneAll(s.cards, identity[Card]) }

func (s *Store) Home() []HomeElement { return cloneAll(s.home, HomeElement.clone) }

func (s *Store) Review() Review { return s.review.clone() }

// Memos returns the gated archive branch. Only a page whose gate has been
// granted should call it.
func (s *Store) Memos() Memos { return s.memos.clone() }

// Counts reports the number of records per collection.
func (s *Store) Counts() map[string]int {
	return map[string]int{
		KindEpisodes:         len(s.episodes),
		KindCredits:          len(s.credits),
		KindLadders:          len(s.ladders),
		KindCards:            len(s.cards),
		KindHome:             len(s.home),
		"review.modules":     len(s.review.Modules),
		"review.issues":      len(s.review.Issues),
		"review.keywords":    len(s.review.Keywords),
		"review.strategies":  len(s.review.Strategies),
		"memos.explorations": len(s.memos.Exploration.Items),
	}
}
