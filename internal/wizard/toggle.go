package wizard

// ToggleCapped flips membership of value in a capped multi-select set.
// Already selected: remove. Below the cap: append. At the cap: the set is
// returned unchanged — the control is inert, no error is raised.
func ToggleCapped(selected []string, value string, cap int) []string {
	for i, v := range selected {
		if v == value {
			out := make([]string, 0, len(selected)-1)
			out = append(out, selected[:i]...)
			return append(out, selected[i+1:]...)
		}
	}
	if len(selected) >= cap {
		return selected
	}
	out := make([]string, len(selected), len(selected)+1)
	copy(out, selected)
	return append(out, value)
}

// Toggle flips membership with no cap.
func Toggle(selected []string, value string) []string {
	return ToggleCapped(selected, value, int(^uint(0)>>1))
}
