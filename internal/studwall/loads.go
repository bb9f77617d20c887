package studwall

// StoryLoads holds cumulative unfactored line loads at the top of a story,
// in kN/m of wall. Loads only accumulate downward, so Dead/Live/Snow are
// non-decreasing from roof to foundation.
type StoryLoads struct {
	Dead float64 `json:"dead"`
	Live float64 `json:"live"`
	Snow float64 `json:"snow"`
}

// accumulateLoads walks the stories roof-first, converting area loads to
// line loads via the tributary widths and summing downward. Index 0 is the
// roof story.
//
// The top story carries roof dead and snow; every story below carries
// floor dead + partitions and floor live. Wall self-weight contributes at
// each story in proportion to its height.
func accumulateLoads(w *wall) []StoryLoads {
	out := make([]StoryLoads, len(w.heightsMM))
	var cum StoryLoads
	for i, h := range w.heightsMM {
		var dl, ll, sl float64
		if i == 0 {
			// kPa * m = kN/m
			dl = w.roofDead*w.roofTribM + w.selfWeight*(h/1000)
			sl = w.roofSnow * w.roofTribM
		} else {
			dl = (w.floorDead+w.partitions)*w.floorTribM + w.selfWeight*(h/1000)
			ll = w.floorLive * w.floorTribM
		}
		cum.Dead += dl
		cum.Live += ll
		cum.Snow += sl
		out[i] = cum
	}
	return out
}
