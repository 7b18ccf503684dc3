package resolver

const defaultDueLimit = 100

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
