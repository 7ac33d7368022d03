package controller

// Message types.
type shadowsMsg struct {
	version int
	rows    []ShadowRow
}

// List item types.
type shadowItem struct {
	row ShadowRow
}

func (s shadowItem) FilterValue() string {
	return s.row.Name + " " + s.row.Target
}
