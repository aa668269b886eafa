package repository

// DeleteResult distingue remoção efetiva de alvo inexistente. A API
// responde 204 nos dois casos; o chamador usa o resultado para
// auditoria e log.
type DeleteResult int

const (
	Deleted DeleteResult = iota
	NotFound
)
