package game

// BannerKind identifies a transient feedback banner.
type BannerKind int

const (
	BannerMissClick BannerKind = iota
	BannerPenalty
	BannerCombo
	BannerStreak
	BannerPerfect
	bannerCount
)

var bannerNames = [bannerCount]string{"missClick", "penalty", "combo", "streak", "perfect"}

func (k BannerKind) String() string {
	if k < 0 || k >= bannerCount {
		return "unknown"
	}
	return bannerNames[k]
}

func (k BannerKind) duration() float64 {
	switch k {
	case BannerMissClick:
		return Rules.MissClickBannerMs
	case BannerPenalty:
		return Rules.PenaltyBannerMs
	case BannerCombo:
		return Rules.ComboBannerMs
	case BannerStreak:
		return Rules.StreakBannerMs
	case BannerPerfect:
		return Rules.PerfectBannerMs
	}
	return 0
}

// Banners tracks the expiry time of each banner kind. Showing a banner that
// is already visible restarts its timer.
type Banners struct {
	expires [bannerCount]float64
	visible [bannerCount]bool
}

// Show makes a banner visible from now.
func (b *Banners) Show(kind BannerKind, now float64) {
	b.expires[kind] = now + kind.duration()
	b.visible[kind] = true
}

// Active reports whether a banner is visible at now.
func (b *Banners) Active(kind BannerKind, now float64) bool {
	return b.visible[kind] && now < b.expires[kind]
}

// Shift moves every deadline by d milliseconds.
func (b *Banners) Shift(d float64) {
	for k := range b.expires {
		b.expires[k] += d
	}
}

// Clear hides all banners.
func (b *Banners) Clear() {
	*b = Banners{}
}

// Visible returns the visible banner kinds in display order.
func (b *Banners) Visible(now float64) []BannerKind {
	var kinds []BannerKind
	for k := BannerKind(0); k < bannerCount; k++ {
		if b.Active(k, now) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
