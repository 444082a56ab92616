package domain

// Beats reports whether candidate may be placed over the current table play
// under the active revolution and suit lock. A nil table means the table is
// open and any lock-compliant candidate may lead. Otherwise the candidate
// must match the table play's kind and size exactly and strictly exceed its
// anchor weight; ties lose.
func Beats(candidate Play, table *Play, revolution bool, lock Suit) bool {
	if !obeysLock(candidate, lock) {
		return false
	}
	if table == nil {
		return true
	}
	if candidate.Kind != table.Kind || candidate.Size() != table.Size() {
		return false
	}
	return Weight(candidate.Anchor(), revolution) > Weight(table.Anchor(), revolution)
}

// obeysLock checks the suit lock per card. The joker member of a group is
// exempt; a lone joker single is not, since it carries no suit the lock
// accepts.
func obeysLock(p Play, lock Suit) bool {
	if lock == NoSuit {
		return true
	}
	switch p.Kind {
	case PlaySingle:
		return p.Cards[0].Suit == lock
	case PlayGroup:
		for _, c := range p.Cards {
			if c.IsJoker() {
				continue
			}
			if c.Suit != lock {
				return false
			}
		}
		return true
	case PlayRun:
		return p.Suit == lock
	default:
		return false
	}
}

// Effects describes the table-level side effects of placing a play.
type Effects struct {
	ClearsTable       bool
	TogglesRevolution bool
}

// PlayEffects computes the side effects of placing the play: any rank-8
// member flushes the table and keeps the lead with the actor, a 4-card
// group toggles the revolution. Both can co-occur; the orchestrator applies
// the revolution toggle before resolving the table.
func PlayEffects(p Play) Effects {
	return Effects{
		ClearsTable:       p.ContainsRank(EightRank),
		TogglesRevolution: p.Kind == PlayGroup && p.Size() == 4,
	}
}

// UpdateSuitLock derives the next suit lock from the previous table play and
// the play just placed. Two consecutive plays resolving to the same dominant
// suit engage (or keep) the lock on that suit; anything else clears it.
func UpdateSuitLock(prev, next *Play, current Suit) Suit {
	if prev == nil || next == nil {
		return NoSuit
	}
	ps := dominantSuit(*prev)
	ns := dominantSuit(*next)
	if ps == NoSuit || ns == NoSuit || ps != ns {
		return NoSuit
	}
	return ns
}

// dominantSuit resolves the single suit a play presents for lock purposes.
// A group only has one when every member shares it, so a joker-bearing
// group never engages a lock.
func dominantSuit(p Play) Suit {
	switch p.Kind {
	case PlaySingle:
		return p.Cards[0].Suit
	case PlayRun:
		return p.Suit
	case PlayGroup:
		if allSameSuit(p.Cards) {
			return p.Cards[0].Suit
		}
		return NoSuit
	default:
		return NoSuit
	}
}
