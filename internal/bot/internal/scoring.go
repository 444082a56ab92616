package internal

import "daifugo/internal/domain"

// Per-card-count offsets penalize larger plays upward so that, at
// comparable anchor rank, a smaller play scores weaker and is shed first.
const (
	GroupSizeOffset = 16
	RunSizeOffset   = 12
)

// WeaknessKey scores a candidate for shedding order: smaller means weaker.
// Singles score their anchor weight; groups and runs add a size penalty.
func WeaknessKey(p domain.Play, revolution bool) int {
	w := domain.Weight(p.Anchor(), revolution)
	switch p.Kind {
	case domain.PlayGroup:
		return w + p.Size()*GroupSizeOffset
	case domain.PlayRun:
		return w + p.Size()*RunSizeOffset
	default:
		return w
	}
}

// IsPremium reports whether the play spends a scarce power: a
// table-clearing rank-8 member or a revolution-toggling 4-group.
func IsPremium(p domain.Play) bool {
	fx := domain.PlayEffects(p)
	return fx.ClearsTable || fx.TogglesRevolution
}
