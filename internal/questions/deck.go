package questions

// Shuffler is the random source used to order the deck.
// *math/rand.Rand satisfies it.
type Shuffler interface {
	Intn(n int) int
}

// Deck serves questions one at a time in shuffled order.
// A cycling deck reshuffles when it runs out and never serves the same
// question twice in a row across the reshuffle. A one-shot deck reports
// exhaustion instead.
type Deck struct {
	questions []Question
	order     []int
	pos       int
	last      int
	cycle     bool
	rng       Shuffler
}

// NewDeck creates a cycling deck over qs.
func NewDeck(qs []Question, rng Shuffler) *Deck {
	return newDeck(qs, rng, true)
}

// NewOneShotDeck creates a deck that serves each question once.
func NewOneShotDeck(qs []Question, rng Shuffler) *Deck {
	return newDeck(qs, rng, false)
}

func newDeck(qs []Question, rng Shuffler, cycle bool) *Deck {
	d := &Deck{
		questions: append([]Question(nil), qs...),
		order:     make([]int, len(qs)),
		last:      -1,
		cycle:     cycle,
		rng:       rng,
	}
	d.shuffle()
	return d
}

// Next returns the next question, or false when a one-shot deck is empty
// or the deck holds no questions at all.
func (d *Deck) Next() (Question, bool) {
	if len(d.questions) == 0 {
		return Question{}, false
	}
	if d.pos >= len(d.order) {
		if !d.cycle {
			return Question{}, false
		}
		d.shuffle()
	}

	idx := d.order[d.pos]
	d.pos++
	d.last = idx
	return d.questions[idx], true
}

// Remaining returns how many questions are left before the next reshuffle.
func (d *Deck) Remaining() int {
	return len(d.order) - d.pos
}

// Len returns the number of questions in the deck.
func (d *Deck) Len() int {
	return len(d.questions)
}

// shuffle reorders the deck with Fisher-Yates.
func (d *Deck) shuffle() {
	for i := range d.order {
		d.order[i] = i
	}
	for i := len(d.order) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.order[i], d.order[j] = d.order[j], d.order[i]
	}
	if len(d.order) > 1 && d.order[0] == d.last {
		j := 1 + d.rng.Intn(len(d.order)-1)
		d.order[0], d.order[j] = d.order[j], d.order[0]
	}
	d.pos = 0
}
